package metrics

import (
	"context"
	"time"

	"github.com/mdhasanali39/taskQuest-server/internal/domain"
	"github.com/mdhasanali39/taskQuest-server/internal/store"
)

// Store operation outcomes.
const (
	outcomeOK          = "ok"
	outcomeUnavailable = "unavailable"
	outcomeError       = "error"
)

// InstrumentedStore decorates a store.TaskStore with operation metrics.
type InstrumentedStore struct {
	next    store.TaskStore
	metrics *Metrics
}

var _ store.TaskStore = (*InstrumentedStore)(nil)

// InstrumentStore wraps next so every call is counted and timed.
func (m *Metrics) InstrumentStore(next store.TaskStore) *InstrumentedStore {
	return &InstrumentedStore{next: next, metrics: m}
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error) {
	outcome := outcomeOK
	switch {
	case err == nil:
	case store.IsUnavailable(err):
		outcome = outcomeUnavailable
	default:
		outcome = outcomeError
	}
	s.metrics.storeOperations.WithLabelValues(op, outcome).Inc()
	s.metrics.storeDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Count implements store.TaskStore.
func (s *InstrumentedStore) Count(ctx context.Context, filter store.TaskFilter) (n int64, err error) {
	defer func(start time.Time) { s.observe("count", start, err) }(time.Now())
	return s.next.Count(ctx, filter)
}

// Find implements store.TaskStore.
func (s *InstrumentedStore) Find(
	ctx context.Context,
	filter store.TaskFilter,
	opts store.FindOptions,
) (tasks []*domain.Task, err error) {
	defer func(start time.Time) { s.observe("find", start, err) }(time.Now())
	return s.next.Find(ctx, filter, opts)
}

// InsertOne implements store.TaskStore.
func (s *InstrumentedStore) InsertOne(ctx context.Context, task *domain.Task) (res *store.InsertResult, err error) {
	defer func(start time.Time) { s.observe("insert", start, err) }(time.Now())
	return s.next.InsertOne(ctx, task)
}

// UpdateOne implements store.TaskStore.
func (s *InstrumentedStore) UpdateOne(
	ctx context.Context,
	key store.TaskKey,
	fields map[string]any,
) (res *store.UpdateResult, err error) {
	defer func(start time.Time) { s.observe("update", start, err) }(time.Now())
	return s.next.UpdateOne(ctx, key, fields)
}

// DeleteOne implements store.TaskStore.
func (s *InstrumentedStore) DeleteOne(ctx context.Context, key store.TaskKey) (res *store.DeleteResult, err error) {
	defer func(start time.Time) { s.observe("delete", start, err) }(time.Now())
	return s.next.DeleteOne(ctx, key)
}

// Ping implements store.TaskStore. Pings are not recorded.
func (s *InstrumentedStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

// Close implements store.TaskStore.
func (s *InstrumentedStore) Close(ctx context.Context) error {
	return s.next.Close(ctx)
}
