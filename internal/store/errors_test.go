package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError("task", "find", "query failed", fmt.Errorf("%w: %v", ErrStoreUnavailable, cause))

	assert.Equal(t,
		"find operation on task failed: query failed: store unavailable: connection reset",
		err.Error())
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.True(t, IsUnavailable(err))
	assert.False(t, errors.Is(err, ErrOperationFailed))

	bare := NewStoreError("task", "insert", "rejected", nil)
	assert.Equal(t, "insert operation on task failed: rejected", bare.Error())
	assert.Nil(t, bare.Unwrap())
}

func TestIsUnavailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("boom"), expected: false},
		{name: "unavailable", err: ErrStoreUnavailable, expected: true},
		{name: "wrapped unavailable", err: fmt.Errorf("count: %w", ErrStoreUnavailable), expected: true},
		{name: "operation failed", err: ErrOperationFailed, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsUnavailable(tc.err))
		})
	}
}

func TestClampSkip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(0), ClampSkip(-4))
	assert.Equal(t, int64(0), ClampSkip(0))
	assert.Equal(t, int64(6), ClampSkip(6))
}
