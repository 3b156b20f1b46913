package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/command"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	shared.RespondWithResult(w, r, http.StatusOK, tasks)
}

// CreateTask handles POST /task requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw, err := shared.DecodeJSONObject(w, r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	cmd, err := command.ParseCreate(raw)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), cmd.Name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("task created", slog.Int("task_id", task.ID))
	shared.RespondWithResult(w, r, http.StatusCreated, task)
}

// UpdateTask handles PUT /task/{id} requests.
// The body is validated before the path and body ids are compared.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	pathID, ok := getPathID(r)
	if !ok {
		NotFound(w, r)
		return
	}

	raw, err := shared.DecodeJSONObject(w, r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	cmd, err := command.ParseUpdate(raw)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if cmd.ID != pathID {
		HandleAPIError(w, r, fmt.Errorf("%w: path %d, body %d", ErrIDMismatch, pathID, cmd.ID))
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), cmd.ID, cmd.Name, cmd.Status)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("task updated", slog.Int("task_id", task.ID))
	shared.RespondWithResult(w, r, http.StatusOK, task)
}

// DeleteTask handles DELETE /task/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := getPathID(r)
	if !ok {
		NotFound(w, r)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("task deleted", slog.Int("task_id", id))
	shared.RespondWithMessage(w, r, fmt.Sprintf("Task #%d has been deleted", id))
}

// NotFound answers requests for routes that do not exist.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, shared.MsgNotFound)
}

// MethodNotAllowed answers requests using a method the route does not support.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, shared.MsgMethodNotAllowed)
}
