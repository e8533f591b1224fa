// Package api handles incoming HTTP requests, request validation, and
// response formatting for the task endpoints. It acts as an adapter between
// browser clients and the listing engine and task service.
//
// Every JSON response uses the {status, message, ...} envelope. Errors are
// mapped to status codes in one place, MapErrorToStatusCode: 400 for bad
// input, 401 for missing or invalid tokens, 403 when the token identity does
// not own the resource, and 500 for store failures.
package api
