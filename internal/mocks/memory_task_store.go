package mocks

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/mdhasanali39/taskQuest-server/internal/domain"
	"github.com/mdhasanali39/taskQuest-server/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMemoryTaskStore is a store.TaskStore backed by a slice, kept in insertion
// order. It behaves like the real adapters for ordering, ownership filters
// and acknowledgements, which makes it suitable for engine and handler tests.
type InMemoryTaskStore struct {
	mu    sync.RWMutex
	tasks []*domain.Task

	// Err, when set, is returned by every operation.
	Err error

	counts  atomic.Int64
	finds   atomic.Int64
	writes  atomic.Int64
	closed  atomic.Bool
	PingErr error
}

var _ store.TaskStore = (*InMemoryTaskStore)(nil)

// NewInMemoryTaskStore creates an empty store.
func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{}
}

// Seed inserts the tasks directly and returns their ids in order.
func (s *InMemoryTaskStore) Seed(tasks ...*domain.Task) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		clone := cloneTask(t)
		if clone.ID == "" {
			clone.ID = primitive.NewObjectID().Hex()
		}
		s.tasks = append(s.tasks, clone)
		ids = append(ids, clone.ID)
	}
	return ids
}

// CountCalls returns how many Count calls the store has served.
func (s *InMemoryTaskStore) CountCalls() int64 { return s.counts.Load() }

// FindCalls returns how many Find calls the store has served.
func (s *InMemoryTaskStore) FindCalls() int64 { return s.finds.Load() }

// WriteCalls returns how many insert, update and delete calls the store has served.
func (s *InMemoryTaskStore) WriteCalls() int64 { return s.writes.Load() }

// Calls returns the total number of data operations served.
func (s *InMemoryTaskStore) Calls() int64 {
	return s.CountCalls() + s.FindCalls() + s.WriteCalls()
}

// Closed reports whether Close has been called.
func (s *InMemoryTaskStore) Closed() bool { return s.closed.Load() }

// All returns a copy of every stored task in insertion order.
func (s *InMemoryTaskStore) All() []*domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, cloneTask(t))
	}
	return out
}

// Count implements store.TaskStore.
func (s *InMemoryTaskStore) Count(ctx context.Context, filter store.TaskFilter) (int64, error) {
	s.counts.Add(1)
	if s.Err != nil {
		return 0, s.Err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, t := range s.tasks {
		if matches(t, filter) {
			n++
		}
	}
	return n, nil
}

// Find implements store.TaskStore.
func (s *InMemoryTaskStore) Find(
	ctx context.Context,
	filter store.TaskFilter,
	opts store.FindOptions,
) ([]*domain.Task, error) {
	s.finds.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	skip := store.ClampSkip(opts.Skip)
	out := []*domain.Task{}
	for _, t := range s.tasks {
		if !matches(t, filter) {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		if opts.Limit > 0 && int64(len(out)) >= opts.Limit {
			break
		}
		out = append(out, cloneTask(t))
	}
	return out, nil
}

// InsertOne implements store.TaskStore.
func (s *InMemoryTaskStore) InsertOne(ctx context.Context, task *domain.Task) (*store.InsertResult, error) {
	s.writes.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	if err := task.Validate(); err != nil {
		return nil, store.NewStoreError("task", "insert", "validation failed", store.ErrInvalidEntity)
	}

	ids := s.Seed(task)
	task.ID = ids[0]
	return &store.InsertResult{Acknowledged: true, InsertedID: ids[0]}, nil
}

// UpdateOne implements store.TaskStore.
func (s *InMemoryTaskStore) UpdateOne(
	ctx context.Context,
	key store.TaskKey,
	fields map[string]any,
) (*store.UpdateResult, error) {
	s.writes.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	if _, err := primitive.ObjectIDFromHex(key.ID); err != nil {
		return nil, store.NewStoreError("task", "update", "invalid task id", store.ErrMalformedID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := &store.UpdateResult{Acknowledged: true}
	for _, t := range s.tasks {
		if t.ID != key.ID || t.UserEmail != key.UserEmail {
			continue
		}
		result.MatchedCount = 1
		if applyFields(t, fields) {
			result.ModifiedCount = 1
		}
		break
	}
	return result, nil
}

// DeleteOne implements store.TaskStore.
func (s *InMemoryTaskStore) DeleteOne(ctx context.Context, key store.TaskKey) (*store.DeleteResult, error) {
	s.writes.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	if _, err := primitive.ObjectIDFromHex(key.ID); err != nil {
		return nil, store.NewStoreError("task", "delete", "invalid task id", store.ErrMalformedID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := &store.DeleteResult{Acknowledged: true}
	for i, t := range s.tasks {
		if t.ID == key.ID && t.UserEmail == key.UserEmail {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			result.DeletedCount = 1
			break
		}
	}
	return result, nil
}

// Ping implements store.TaskStore.
func (s *InMemoryTaskStore) Ping(ctx context.Context) error {
	return s.PingErr
}

// Close implements store.TaskStore.
func (s *InMemoryTaskStore) Close(ctx context.Context) error {
	s.closed.Store(true)
	return nil
}

func matches(t *domain.Task, filter store.TaskFilter) bool {
	if filter.UserEmail != "" && t.UserEmail != filter.UserEmail {
		return false
	}
	if filter.Status != "" && t.Status != filter.Status {
		return false
	}
	return true
}

// applyFields performs $set semantics and reports whether anything changed.
func applyFields(t *domain.Task, fields map[string]any) bool {
	changed := false
	for k, v := range fields {
		switch k {
		case domain.FieldStatus:
			if s, ok := v.(string); ok && domain.TaskStatus(s) != t.Status {
				t.Status = domain.TaskStatus(s)
				changed = true
			}
		case domain.FieldID, domain.FieldUserEmail:
		default:
			if t.Fields == nil {
				t.Fields = map[string]any{}
			}
			if old, ok := t.Fields[k]; !ok || !reflect.DeepEqual(old, v) {
				t.Fields[k] = v
				changed = true
			}
		}
	}
	return changed
}

func cloneTask(t *domain.Task) *domain.Task {
	clone := *t
	if t.Fields != nil {
		clone.Fields = make(map[string]any, len(t.Fields))
		for k, v := range t.Fields {
			clone.Fields[k] = v
		}
	}
	return &clone
}
