package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mdhasanali39/taskQuest-server/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "deadline exceeded",
			err:      context.DeadlineExceeded,
			expected: store.ErrStoreUnavailable,
		},
		{
			name:     "bad connection",
			err:      fmt.Errorf("exec: %w", driver.ErrBadConn),
			expected: store.ErrStoreUnavailable,
		},
		{
			name:     "connection done",
			err:      sql.ErrConnDone,
			expected: store.ErrStoreUnavailable,
		},
		{
			name:     "connection exception class",
			err:      &pgconn.PgError{Code: "08001"},
			expected: store.ErrStoreUnavailable,
		},
		{
			name:     "admin shutdown",
			err:      &pgconn.PgError{Code: adminShutdownCode},
			expected: store.ErrStoreUnavailable,
		},
		{
			name:     "too many connections",
			err:      &pgconn.PgError{Code: tooManyConnectionsCode},
			expected: store.ErrStoreUnavailable,
		},
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "tasks_id_key"},
			expected: store.ErrOperationFailed,
		},
		{
			name:     "check violation",
			err:      &pgconn.PgError{Code: checkViolationCode, ConstraintName: "tasks_status_check"},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "not null violation",
			err:      &pgconn.PgError{Code: notNullViolationCode, ColumnName: "user_email"},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "syntax error",
			err:      &pgconn.PgError{Code: "42601"},
			expected: store.ErrOperationFailed,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: store.ErrOperationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			assert.ErrorIs(t, mapped, tt.expected)
			assert.ErrorIs(t, mapped, tt.err, "original error must stay in the chain")
		})
	}
}

func TestMapErrorNil(t *testing.T) {
	t.Parallel()
	assert.NoError(t, MapError(nil))
	assert.False(t, IsUnavailable(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolationCode})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: checkViolationCode}))
	assert.False(t, IsUniqueViolation(errors.New("duplicate")))
}
