package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/events"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies spans created by this package.
const tracerName = "github.com/phrazzld/tasks-api/internal/service"

// TaskService provides task operations to the API layer.
type TaskService interface {
	// ListTasks returns all tasks in creation order.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// CreateTask creates a task with the given, already validated, name.
	CreateTask(ctx context.Context, name string) (*domain.Task, error)

	// UpdateTask replaces the name and status of an existing task.
	UpdateTask(ctx context.Context, id int, name string, status bool) (*domain.Task, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id int) error
}

// Option customizes a task service.
type Option func(*taskServiceImpl)

// WithTracerProvider sets the provider spans are created from.
// The global otel provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *taskServiceImpl) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithEventEmitter publishes a lifecycle event after every successful mutation.
func WithEventEmitter(emitter events.EventEmitter) Option {
	return func(s *taskServiceImpl) {
		s.emitter = emitter
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store   store.TaskStore
	logger  *slog.Logger
	tracer  trace.Tracer
	emitter events.EventEmitter
}

// NewTaskService creates a TaskService that forwards to taskStore.
// It returns an error if taskStore is nil.
func NewTaskService(
	taskStore store.TaskStore,
	logger *slog.Logger,
	opts ...Option,
) (TaskService, error) {
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &taskServiceImpl{
		store:  taskStore,
		logger: logger.With(slog.String("component", "task_service")),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "TaskService.ListTasks")
	defer span.End()

	tasks, err := s.store.List(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("task.count", len(tasks)))
	logger.FromContextOrDefault(ctx, s.logger).Debug("listed tasks",
		slog.Int("count", len(tasks)))
	return tasks, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, name string) (*domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "TaskService.CreateTask")
	defer span.End()

	task, err := s.store.Create(ctx, name)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("task.id", task.ID))
	logger.FromContextOrDefault(ctx, s.logger).Debug("created task",
		slog.Int("task_id", task.ID))
	s.emit(ctx, events.NewTaskEvent(events.TaskCreated, task.ID, task))
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int,
	name string,
	status bool,
) (*domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "TaskService.UpdateTask",
		trace.WithAttributes(attribute.Int("task.id", id)))
	defer span.End()

	task, err := s.store.Update(ctx, id, name, status)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("updated task",
		slog.Int("task_id", id))
	s.emit(ctx, events.NewTaskEvent(events.TaskUpdated, id, task))
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int) error {
	ctx, span := s.tracer.Start(ctx, "TaskService.DeleteTask",
		trace.WithAttributes(attribute.Int("task.id", id)))
	defer span.End()

	if err := s.store.Delete(ctx, id); err != nil {
		recordError(span, err)
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("deleted task",
		slog.Int("task_id", id))
	s.emit(ctx, events.NewTaskEvent(events.TaskDeleted, id, nil))
	return nil
}

// emit publishes event if an emitter is configured. The mutation has already
// happened, so a failing handler is logged and not reported to the caller.
func (s *taskServiceImpl) emit(ctx context.Context, event *events.TaskEvent) {
	if s.emitter == nil {
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to emit task event",
			slog.String("event_type", string(event.Type)),
			slog.Int("task_id", event.TaskID),
			slog.String("error", err.Error()))
	}
}

// recordError marks the span failed. Missing tasks are client errors and
// leave the span status unset.
func recordError(span trace.Span, err error) {
	span.RecordError(err)
	if !store.IsNotFoundError(err) {
		span.SetStatus(codes.Error, err.Error())
	}
}
