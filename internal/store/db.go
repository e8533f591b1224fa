package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database/sql access layer used by the SQL-backed
// task store. It is implemented by both *sql.DB and *sql.Tx, and by
// sqlmock connections in tests.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
