package store

import (
	"context"

	"github.com/mdhasanali39/taskQuest-server/internal/domain"
)

// TaskFilter selects the tasks of one owner in one status bucket.
type TaskFilter struct {
	UserEmail string
	Status    domain.TaskStatus
}

// FindOptions bounds a Find call. Limit must be positive; a non-positive
// Skip means "start at the first record".
type FindOptions struct {
	Limit int64
	Skip  int64
}

// TaskKey addresses a single task of a single owner. Writes only match a
// task whose id and owner both agree.
type TaskKey struct {
	ID        string
	UserEmail string
}

// InsertResult acknowledges an insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult acknowledges an update.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteResult acknowledges a delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// TaskStore defines the interface for task document persistence.
//
// Implementations must be safe for concurrent use: the listing engine
// issues several reads against the same store at once.
type TaskStore interface {
	// Count returns the number of tasks matching filter.
	Count(ctx context.Context, filter TaskFilter) (int64, error)

	// Find returns the tasks matching filter in insertion order, skipping
	// opts.Skip records and returning at most opts.Limit.
	// A page past the end of the data yields an empty slice, not an error.
	Find(ctx context.Context, filter TaskFilter, opts FindOptions) ([]*domain.Task, error)

	// InsertOne stores a new task and assigns its id.
	// Returns ErrInvalidEntity if the task fails validation.
	InsertOne(ctx context.Context, task *domain.Task) (*InsertResult, error)

	// UpdateOne sets the given fields on the task addressed by key.
	// It never inserts; a key that matches nothing yields MatchedCount 0.
	// Returns ErrMalformedID if key.ID is not a valid identifier.
	UpdateOne(ctx context.Context, key TaskKey, fields map[string]any) (*UpdateResult, error)

	// DeleteOne removes the task addressed by key.
	// Returns ErrMalformedID if key.ID is not a valid identifier.
	DeleteOne(ctx context.Context, key TaskKey) (*DeleteResult, error)

	// Ping checks that the backing database is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection pool.
	Close(ctx context.Context) error
}

// ClampSkip normalizes a computed skip value. Non-positive values mean
// "no skip".
func ClampSkip(skip int64) int64 {
	if skip < 0 {
		return 0
	}
	return skip
}
