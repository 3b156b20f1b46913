package memory

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskStore implements the store.TaskStore interface with a map keyed by task id.
// A single RWMutex guards the whole collection.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[int]domain.Task
	lastID int
	logger *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty TaskStore. The first task created gets id 1.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		tasks:  make(map[int]domain.Task),
		logger: logger.With(slog.String("component", "memory_task_store")),
	}
}

// List returns all tasks ordered by creation.
// Ids only ever increase, so ascending id order is creation order.
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	if err := checkContext(ctx, "list"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	tasks := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t)
	}
	s.mu.RUnlock()

	slices.SortFunc(tasks, func(a, b domain.Task) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return tasks, nil
}

// Create stores a new incomplete task with the next id.
func (s *TaskStore) Create(ctx context.Context, name string) (*domain.Task, error) {
	if err := checkContext(ctx, "create"); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastID++
	task := domain.NewTask(s.lastID, name)
	s.tasks[task.ID] = task
	s.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("task created",
		slog.Int("task_id", task.ID))
	return &task, nil
}

// Update replaces the name and status of an existing task in place.
func (s *TaskStore) Update(
	ctx context.Context,
	id int,
	name string,
	status bool,
) (*domain.Task, error) {
	if err := checkContext(ctx, "update"); err != nil {
		return nil, err
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	task, ok := s.tasks[id]
	if !ok {
		s.mu.Unlock()
		log.Debug("task to update not found", slog.Int("task_id", id))
		return nil, store.NewTaskNotFoundError(id)
	}
	task.Name = name
	task.Status = status
	s.tasks[id] = task
	s.mu.Unlock()

	log.Debug("task updated", slog.Int("task_id", id), slog.Bool("status", status))
	return &task, nil
}

// Delete removes a task. Its id is not handed out again.
func (s *TaskStore) Delete(ctx context.Context, id int) error {
	if err := checkContext(ctx, "delete"); err != nil {
		return err
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	if _, ok := s.tasks[id]; !ok {
		s.mu.Unlock()
		log.Debug("task to delete not found", slog.Int("task_id", id))
		return store.NewTaskNotFoundError(id)
	}
	delete(s.tasks, id)
	s.mu.Unlock()

	log.Debug("task deleted", slog.Int("task_id", id))
	return nil
}

// checkContext refuses work for a request that has already been cancelled.
func checkContext(ctx context.Context, operation string) error {
	if err := ctx.Err(); err != nil {
		return store.NewStoreError("task", operation, "context done", err)
	}
	return nil
}

// Len returns the number of tasks currently stored.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
