package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mdhasanali39/taskQuest-server/internal/api/shared"
	"github.com/mdhasanali39/taskQuest-server/internal/domain"
	"github.com/mdhasanali39/taskQuest-server/internal/platform/logger"
	"github.com/mdhasanali39/taskQuest-server/internal/service"
	"github.com/mdhasanali39/taskQuest-server/internal/service/listing"
)

// TaskLister builds the paginated task board for one owner.
type TaskLister interface {
	List(ctx context.Context, p listing.Params) (*listing.TaskBoard, error)
}

// TaskHandler handles the task listing and CRUD endpoints.
type TaskHandler struct {
	lister  TaskLister
	service service.TaskService
	logger  *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(lister TaskLister, taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		lister:  lister,
		service: taskService,
		logger:  logger.With("component", "task_handler"),
	}
}

// ListTasks handles GET /task-quest/get-all/{email}.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}
	if chi.URLParam(r, "email") != owner {
		logger.FromContextOrDefault(r.Context(), h.logger).Warn("listing requested for another owner")
		HandleAPIError(w, r, domain.ErrOwnerMismatch)
		return
	}

	params, err := parseListingParams(r, owner)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	board, err := h.lister.List(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListTasksResponse{
		Status:  true,
		Message: MsgTasksListed,
		Tasks:   board,
	})
}

// CreateTask handles POST /task-quest/create-task.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var task domain.Task
	if err := shared.DecodeJSON(r, &task); err != nil {
		HandleAPIError(w, r, domain.ErrInvalidFormat)
		return
	}

	result, err := h.service.CreateTask(r.Context(), owner, &task)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, WriteResponse{
		Status:      true,
		Message:     MsgTaskInserted,
		Acknowledge: result,
	})
}

// UpdateTask handles PUT /task-quest/update-task/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var fields map[string]any
	if err := shared.DecodeJSON(r, &fields); err != nil || fields == nil {
		HandleAPIError(w, r, domain.ErrInvalidFormat)
		return
	}

	result, err := h.service.UpdateTask(r.Context(), owner, taskIDParam(r), fields)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, WriteResponse{
		Status:      true,
		Message:     MsgTaskUpdated,
		Acknowledge: result,
	})
}

// UpdateTaskStatus handles PATCH /task-quest/update-task-status/{id}.
func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, domain.ErrInvalidFormat)
		return
	}
	status, err := domain.ParseTaskStatus(req.Status)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	result, err := h.service.UpdateTaskStatus(r.Context(), owner, taskIDParam(r), status)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, WriteResponse{
		Status:      true,
		Message:     MsgTaskStatusUpdated,
		Acknowledge: result,
	})
}

// DeleteTask handles DELETE /task-quest/delete-task/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	result, err := h.service.DeleteTask(r.Context(), owner, taskIDParam(r))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, WriteResponse{
		Status:      true,
		Message:     MsgTaskDeleted,
		Acknowledge: result,
	})
}
