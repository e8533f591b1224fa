// Package store defines the persistence contract for task documents.
// The interfaces here abstract the underlying database from the listing
// engine and the CRUD service; concrete adapters live under
// internal/platform (MongoDB and PostgreSQL).
package store
