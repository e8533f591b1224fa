package listing

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/mdhasanali39/taskQuest-server/internal/domain"
	"github.com/mdhasanali39/taskQuest-server/internal/platform/logger"
	"github.com/mdhasanali39/taskQuest-server/internal/store"
	"golang.org/x/sync/errgroup"
)

const (
	// PreviewSize is the number of tasks shown for a bucket that is not being paginated.
	PreviewSize int64 = 3

	// DefaultPageSize is used when the caller names no page size.
	DefaultPageSize int64 = 10

	// DefaultCurrentPage is used when the caller names no page.
	DefaultCurrentPage int64 = 1
)

// Params describes one listing request.
type Params struct {
	Owner       string
	PageSize    int64
	CurrentPage int64
	Filter      StatusFilter
}

// TaskBoard is the aggregated listing result.
// The three lists are never nil so they always encode as JSON arrays.
type TaskBoard struct {
	Todo           []*domain.Task `json:"todo"`
	Ongoing        []*domain.Task `json:"ongoing"`
	Completed      []*domain.Task `json:"completed"`
	TotalTodo      int64          `json:"totalTodoTasks"`
	TotalOngoing   int64          `json:"totalOngoingTasks"`
	TotalCompleted int64          `json:"totalCompletedTasks"`
}

func newTaskBoard() *TaskBoard {
	return &TaskBoard{
		Todo:      []*domain.Task{},
		Ongoing:   []*domain.Task{},
		Completed: []*domain.Task{},
	}
}

func (b *TaskBoard) setTasks(status domain.TaskStatus, tasks []*domain.Task) {
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	switch status {
	case domain.TaskStatusTodo:
		b.Todo = tasks
	case domain.TaskStatusOngoing:
		b.Ongoing = tasks
	case domain.TaskStatusCompleted:
		b.Completed = tasks
	}
}

func (b *TaskBoard) setTotal(status domain.TaskStatus, n int64) {
	switch status {
	case domain.TaskStatusTodo:
		b.TotalTodo = n
	case domain.TaskStatusOngoing:
		b.TotalOngoing = n
	case domain.TaskStatusCompleted:
		b.TotalCompleted = n
	}
}

// BucketQuery is the find issued for one status bucket.
type BucketQuery struct {
	Status domain.TaskStatus
	Limit  int64
	Skip   int64
}

// Plan returns the finds a listing needs, in bucket order. Counts are not
// part of the plan; every listing counts all three buckets.
//
// FilterNone plans nothing. A concrete status gets a page of PageSize
// records starting at (CurrentPage-1)*PageSize, and the other buckets get a
// preview. FilterAll previews every bucket. A non-positive PageSize plans no
// find for the paginated bucket, which then stays empty.
func (p Params) Plan() []BucketQuery {
	if p.Filter == FilterAll {
		plan := make([]BucketQuery, 0, len(domain.TaskStatuses))
		for _, status := range domain.TaskStatuses {
			plan = append(plan, BucketQuery{Status: status, Limit: PreviewSize})
		}
		return plan
	}

	paged, ok := p.Filter.Status()
	if !ok {
		return nil
	}

	plan := make([]BucketQuery, 0, len(domain.TaskStatuses))
	for _, status := range domain.TaskStatuses {
		if status != paged {
			plan = append(plan, BucketQuery{Status: status, Limit: PreviewSize})
			continue
		}
		if p.PageSize <= 0 {
			continue
		}
		plan = append(plan, BucketQuery{
			Status: status,
			Limit:  p.PageSize,
			Skip:   pageOffset(p.CurrentPage, p.PageSize),
		})
	}
	return plan
}

// pageOffset computes (page-1)*size, clamped to [0, MaxInt64].
func pageOffset(page, size int64) int64 {
	if page <= 1 || size <= 0 {
		return 0
	}
	if page-1 > math.MaxInt64/size {
		return math.MaxInt64
	}
	return store.ClampSkip((page - 1) * size)
}

// Engine answers listing requests against a task store.
type Engine struct {
	store  store.TaskStore
	logger *slog.Logger
}

// NewEngine creates an Engine reading from taskStore.
func NewEngine(taskStore store.TaskStore, logger *slog.Logger) (*Engine, error) {
	if taskStore == nil {
		return nil, fmt.Errorf("task store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:  taskStore,
		logger: logger.With("component", "listing_engine"),
	}, nil
}

// List builds the task board for p.
//
// All counts and finds run concurrently. The group is not bound to a
// cancelable context: once started, each query runs until it returns.
// Any failure discards the partial board and is returned wrapped.
func (e *Engine) List(ctx context.Context, p Params) (*TaskBoard, error) {
	if p.Owner == "" {
		return nil, ErrEmptyOwner
	}

	log := logger.FromContextOrDefault(ctx, e.logger)
	plan := p.Plan()

	totals := make([]int64, len(domain.TaskStatuses))
	lists := make([][]*domain.Task, len(plan))

	var g errgroup.Group
	for i, status := range domain.TaskStatuses {
		g.Go(func() error {
			n, err := e.store.Count(ctx, store.TaskFilter{UserEmail: p.Owner, Status: status})
			if err != nil {
				return fmt.Errorf("count %s tasks: %w", status, err)
			}
			totals[i] = n
			return nil
		})
	}
	for i, q := range plan {
		g.Go(func() error {
			tasks, err := e.store.Find(ctx,
				store.TaskFilter{UserEmail: p.Owner, Status: q.Status},
				store.FindOptions{Limit: q.Limit, Skip: q.Skip},
			)
			if err != nil {
				return fmt.Errorf("find %s tasks: %w", q.Status, err)
			}
			lists[i] = tasks
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("listing failed",
			"filter", p.Filter.String(),
			"page_size", p.PageSize,
			"current_page", p.CurrentPage,
			"error", err)
		return nil, err
	}

	board := newTaskBoard()
	for i, status := range domain.TaskStatuses {
		board.setTotal(status, totals[i])
	}
	for i, q := range plan {
		board.setTasks(q.Status, lists[i])
	}

	log.Debug("listing built",
		"filter", p.Filter.String(),
		"queries", len(plan)+len(domain.TaskStatuses),
		"todo", len(board.Todo),
		"ongoing", len(board.Ongoing),
		"completed", len(board.Completed))

	return board, nil
}
