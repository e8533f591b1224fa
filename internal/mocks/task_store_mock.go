package mocks

import (
	"context"

	"github.com/mdhasanali39/taskQuest-server/internal/domain"
	"github.com/mdhasanali39/taskQuest-server/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockTaskStore is a mock of store.TaskStore interface for use with testify/mock
type TestifyMockTaskStore struct {
	mock.Mock
}

var _ store.TaskStore = (*TestifyMockTaskStore)(nil)

// Count is a mock implementation of store.TaskStore.Count
func (m *TestifyMockTaskStore) Count(ctx context.Context, filter store.TaskFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// Find is a mock implementation of store.TaskStore.Find
func (m *TestifyMockTaskStore) Find(
	ctx context.Context,
	filter store.TaskFilter,
	opts store.FindOptions,
) ([]*domain.Task, error) {
	args := m.Called(ctx, filter, opts)
	if tasks, ok := args.Get(0).([]*domain.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}

// InsertOne is a mock implementation of store.TaskStore.InsertOne
func (m *TestifyMockTaskStore) InsertOne(ctx context.Context, task *domain.Task) (*store.InsertResult, error) {
	args := m.Called(ctx, task)
	if res, ok := args.Get(0).(*store.InsertResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateOne is a mock implementation of store.TaskStore.UpdateOne
func (m *TestifyMockTaskStore) UpdateOne(
	ctx context.Context,
	key store.TaskKey,
	fields map[string]any,
) (*store.UpdateResult, error) {
	args := m.Called(ctx, key, fields)
	if res, ok := args.Get(0).(*store.UpdateResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// DeleteOne is a mock implementation of store.TaskStore.DeleteOne
func (m *TestifyMockTaskStore) DeleteOne(ctx context.Context, key store.TaskKey) (*store.DeleteResult, error) {
	args := m.Called(ctx, key)
	if res, ok := args.Get(0).(*store.DeleteResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// Ping is a mock implementation of store.TaskStore.Ping
func (m *TestifyMockTaskStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close is a mock implementation of store.TaskStore.Close
func (m *TestifyMockTaskStore) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
