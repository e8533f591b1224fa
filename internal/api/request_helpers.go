package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mdhasanali39/taskQuest-server/internal/api/shared"
	"github.com/mdhasanali39/taskQuest-server/internal/domain"
	"github.com/mdhasanali39/taskQuest-server/internal/service/listing"
)

// Query parameters of the listing endpoint.
const (
	queryPageSize    = "pageSize"
	queryCurrentPage = "currentPage"
	queryTaskStatus  = "taskStatus"
)

// requireOwner returns the authenticated email set by the auth middleware.
// It writes a 401 envelope and returns false when there is none.
func requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	owner, ok := shared.GetOwner(r.Context())
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized)
		return "", false
	}
	return owner, true
}

// parseListingParams reads pageSize, currentPage and taskStatus from the
// query string. Absent values take their defaults.
func parseListingParams(r *http.Request, owner string) (listing.Params, error) {
	q := r.URL.Query()

	pageSize, err := parseIntParam(q.Get(queryPageSize), listing.DefaultPageSize)
	if err != nil {
		return listing.Params{}, fmt.Errorf("%s: %w", queryPageSize, err)
	}
	currentPage, err := parseIntParam(q.Get(queryCurrentPage), listing.DefaultCurrentPage)
	if err != nil {
		return listing.Params{}, fmt.Errorf("%s: %w", queryCurrentPage, err)
	}
	filter, err := listing.ParseStatusFilter(q.Get(queryTaskStatus))
	if err != nil {
		return listing.Params{}, err
	}

	return listing.Params{
		Owner:       owner,
		PageSize:    pageSize,
		CurrentPage: currentPage,
		Filter:      filter,
	}, nil
}

func parseIntParam(raw string, def int64) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPagination, raw)
	}
	return n, nil
}

// taskIDParam returns the {id} path parameter.
func taskIDParam(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "id"))
}
