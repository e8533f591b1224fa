// Package postgres provides a PostgreSQL implementation of store.TaskStore.
//
// Tasks are kept as JSONB documents in a single table. The owner and status
// are duplicated into plain columns so the listing queries can use the
// (user_email, status, seq) index, and seq preserves insertion order.
// Identifiers are ObjectID-style hex strings so both backends hand out ids
// of the same shape.
//
// The schema lives in embedded goose migrations; see Migrate.
package postgres
