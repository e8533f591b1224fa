// Package testutils provides helpers shared by HTTP and logging tests: an
// in-memory slog handler and small wrappers around httptest servers that
// understand the response envelope.
package testutils
