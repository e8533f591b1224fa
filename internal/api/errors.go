package api

import (
	"errors"
	"net/http"

	"github.com/mdhasanali39/taskQuest-server/internal/api/middleware"
	"github.com/mdhasanali39/taskQuest-server/internal/api/shared"
	"github.com/mdhasanali39/taskQuest-server/internal/domain"
	"github.com/mdhasanali39/taskQuest-server/internal/redact"
	"github.com/mdhasanali39/taskQuest-server/internal/service"
	"github.com/mdhasanali39/taskQuest-server/internal/service/auth"
	"github.com/mdhasanali39/taskQuest-server/internal/service/listing"
	"github.com/mdhasanali39/taskQuest-server/internal/store"
)

// ErrInvalidPagination is returned when pageSize or currentPage is not an integer.
var ErrInvalidPagination = errors.New("pagination parameters must be integers")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, service.ErrEmptyOwner),
		errors.Is(err, listing.ErrEmptyOwner):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrOwnerMismatch):
		return http.StatusForbidden

	// Bad request errors
	case errors.Is(err, listing.ErrInvalidStatusFilter),
		errors.Is(err, domain.ErrInvalidTaskStatus),
		errors.Is(err, domain.ErrTaskFieldsEmpty),
		errors.Is(err, domain.ErrTaskUserEmailEmpty),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrEmptyTaskID),
		errors.Is(err, auth.ErrEmptyIdentity),
		errors.Is(err, shared.ErrEmptyBody),
		errors.Is(err, ErrInvalidPagination),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Store failures, malformed ids and anything unexpected
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the envelope message for err. Client errors get
// a fixed message; server errors embed the redacted error description.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case MapErrorToStatusCode(err) == http.StatusUnauthorized:
		return middleware.UnauthorizedMessage

	case errors.Is(err, domain.ErrOwnerMismatch):
		return "Forbidden access"

	case errors.Is(err, listing.ErrInvalidStatusFilter):
		return "Invalid task status filter"

	case errors.Is(err, domain.ErrInvalidTaskStatus):
		return "Invalid task status"

	case errors.Is(err, domain.ErrTaskFieldsEmpty):
		return "Update must contain at least one field"

	case errors.Is(err, ErrInvalidPagination):
		return "Invalid pagination parameters"

	case errors.Is(err, domain.ErrInvalidFieldName):
		return "Field names must not contain '.' or start with '$'"

	case errors.Is(err, service.ErrEmptyTaskID):
		return "Task id is required"

	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, auth.ErrEmptyIdentity):
		return "A valid email is required"

	case MapErrorToStatusCode(err) == http.StatusBadRequest:
		return "Invalid request format"

	default:
		return "Internal server error " + redact.Error(err)
	}
}

// HandleAPIError writes the error envelope for err and logs the details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
