package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in ServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrEmptyOwner indicates a write was attempted without an authenticated identity.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrEmptyOwner = errors.New("owner identity cannot be empty")

	// ErrEmptyTaskID indicates a write addressed no task.
	// API layer should map this to HTTP 400 Bad Request.
	ErrEmptyTaskID = errors.New("task id cannot be empty")
)

// ServiceError wraps an unexpected failure with the service and operation it came from.
type ServiceError struct {
	// Service is the service that failed (e.g., "task")
	Service string
	// Op is the operation that failed (e.g., "create", "update_status")
	Op string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError wraps err in a ServiceError. It returns nil for a nil err.
func NewServiceError(service, op string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Service: service, Op: op, Err: err}
}
