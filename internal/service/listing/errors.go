package listing

import "errors"

var (
	// ErrInvalidStatusFilter indicates a taskStatus value outside todo, ongoing, completed and all.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidStatusFilter = errors.New("invalid task status filter")

	// ErrEmptyOwner indicates a listing was requested without an owner identity.
	ErrEmptyOwner = errors.New("listing owner cannot be empty")
)
