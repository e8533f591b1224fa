package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mdhasanali39/taskQuest-server/internal/domain"
	"github.com/mdhasanali39/taskQuest-server/internal/events"
	"github.com/mdhasanali39/taskQuest-server/internal/platform/logger"
	"github.com/mdhasanali39/taskQuest-server/internal/store"
)

// TaskService provides the task write operations.
type TaskService interface {
	// CreateTask stores task for owner. An empty userEmail is filled in with
	// owner; a different one is rejected with domain.ErrOwnerMismatch.
	CreateTask(ctx context.Context, owner string, task *domain.Task) (*store.InsertResult, error)

	// UpdateTask sets the given fields on one of owner's tasks.
	// The id and userEmail keys are ignored.
	UpdateTask(ctx context.Context, owner, id string, fields map[string]any) (*store.UpdateResult, error)

	// UpdateTaskStatus sets only the status of one of owner's tasks.
	UpdateTaskStatus(
		ctx context.Context,
		owner, id string,
		status domain.TaskStatus,
	) (*store.UpdateResult, error)

	// DeleteTask removes one of owner's tasks.
	DeleteTask(ctx context.Context, owner, id string) (*store.DeleteResult, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store   store.TaskStore
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewTaskService creates a TaskService. The emitter may be nil, in which
// case no events are published.
func NewTaskService(
	taskStore store.TaskStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, fmt.Errorf("task store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &taskServiceImpl{
		store:   taskStore,
		emitter: emitter,
		logger:  logger.With("component", "task_service"),
	}, nil
}

// CreateTask implements TaskService.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	owner string,
	task *domain.Task,
) (*store.InsertResult, error) {
	if owner == "" {
		return nil, ErrEmptyOwner
	}
	if task == nil {
		return nil, fmt.Errorf("%w: task body is required", domain.ErrInvalidFormat)
	}

	switch {
	case task.UserEmail == "":
		task.UserEmail = owner
	case task.UserEmail != owner:
		return nil, domain.ErrOwnerMismatch
	}
	// The store assigns ids.
	task.ID = ""

	if err := task.Validate(); err != nil {
		return nil, err
	}

	result, err := s.store.InsertOne(ctx, task)
	if err != nil {
		return nil, NewServiceError("task", "create", err)
	}

	s.emit(ctx, events.TypeTaskCreated, result.InsertedID, owner,
		map[string]string{"status": string(task.Status)})
	return result, nil
}

// UpdateTask implements TaskService.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	owner, id string,
	fields map[string]any,
) (*store.UpdateResult, error) {
	if err := checkKey(owner, id); err != nil {
		return nil, err
	}

	clean, err := domain.SanitizeUpdate(fields)
	if err != nil {
		return nil, err
	}

	result, err := s.store.UpdateOne(ctx, store.TaskKey{ID: id, UserEmail: owner}, clean)
	if err != nil {
		return nil, NewServiceError("task", "update", err)
	}

	if result.MatchedCount > 0 {
		keys := make([]string, 0, len(clean))
		for k := range clean {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		s.emit(ctx, events.TypeTaskUpdated, id, owner, map[string]any{"fields": keys})
	}
	return result, nil
}

// UpdateTaskStatus implements TaskService.
func (s *taskServiceImpl) UpdateTaskStatus(
	ctx context.Context,
	owner, id string,
	status domain.TaskStatus,
) (*store.UpdateResult, error) {
	if err := checkKey(owner, id); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTaskStatus, status)
	}

	result, err := s.store.UpdateOne(ctx,
		store.TaskKey{ID: id, UserEmail: owner},
		map[string]any{domain.FieldStatus: string(status)},
	)
	if err != nil {
		return nil, NewServiceError("task", "update_status", err)
	}

	if result.ModifiedCount > 0 {
		s.emit(ctx, events.TypeTaskStatusChanged, id, owner, map[string]string{"status": string(status)})
	}
	return result, nil
}

// DeleteTask implements TaskService.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, owner, id string) (*store.DeleteResult, error) {
	if err := checkKey(owner, id); err != nil {
		return nil, err
	}

	result, err := s.store.DeleteOne(ctx, store.TaskKey{ID: id, UserEmail: owner})
	if err != nil {
		return nil, NewServiceError("task", "delete", err)
	}

	if result.DeletedCount > 0 {
		s.emit(ctx, events.TypeTaskDeleted, id, owner, nil)
	}
	return result, nil
}

func checkKey(owner, id string) error {
	if owner == "" {
		return ErrEmptyOwner
	}
	if strings.TrimSpace(id) == "" {
		return ErrEmptyTaskID
	}
	return nil
}

// emit publishes a lifecycle event. The write has already succeeded, so
// failures are logged and not returned.
func (s *taskServiceImpl) emit(ctx context.Context, eventType, taskID, owner string, payload any) {
	if s.emitter == nil {
		return
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewTaskEvent(eventType, taskID, owner, payload)
	if err != nil {
		log.Error("failed to build task event", "event_type", eventType, "error", err)
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("task event handler failed",
			"event_type", eventType,
			"task_id", taskID,
			"error", err)
	}
}
