package service

import (
	"errors"
	"testing"

	"github.com/mdhasanali39/taskQuest-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "owner identity cannot be empty", ErrEmptyOwner.Error())
	assert.Equal(t, "task id cannot be empty", ErrEmptyTaskID.Error())
	assert.False(t, errors.Is(ErrEmptyOwner, ErrEmptyTaskID))
}

func TestServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		service  string
		op       string
		err      error
		expected string
	}{
		{
			name:     "with underlying error",
			service:  "task",
			op:       "create",
			err:      errors.New("database connection failed"),
			expected: "task service create operation failed: database connection failed",
		},
		{
			name:     "without underlying error",
			service:  "task",
			op:       "delete",
			err:      nil,
			expected: "task service delete operation failed",
		},
		{
			name:     "with sentinel error",
			service:  "task",
			op:       "update",
			err:      store.ErrMalformedID,
			expected: "task service update operation failed: malformed identifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceErr := &ServiceError{
				Service: tt.service,
				Op:      tt.op,
				Err:     tt.err,
			}

			assert.Equal(t, tt.expected, serviceErr.Error())
		})
	}
}

func TestServiceError_ErrorsIs(t *testing.T) {
	underlyingErr := store.NewStoreError("task", "insert", "server selection timeout", store.ErrStoreUnavailable)
	serviceErr := NewServiceError("task", "create", underlyingErr)

	assert.True(t, errors.Is(serviceErr, store.ErrStoreUnavailable))
	assert.False(t, errors.Is(serviceErr, store.ErrMalformedID))

	var se *ServiceError
	require.True(t, errors.As(serviceErr, &se))
	assert.Equal(t, "create", se.Op)
}

func TestNewServiceErrorNil(t *testing.T) {
	assert.NoError(t, NewServiceError("task", "create", nil))
}
