package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// Type names a kind of task lifecycle event.
type Type string

// Task lifecycle event types.
const (
	TaskCreated Type = "task.created"
	TaskUpdated Type = "task.updated"
	TaskDeleted Type = "task.deleted"
)

// TaskEvent records a change to a single task.
type TaskEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	Type   Type `json:"type"`
	TaskID int  `json:"task_id"`

	// Task is the state after the change; nil for deletions.
	Task *domain.Task `json:"task,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NewTaskEvent creates a TaskEvent for taskID. task may be nil.
func NewTaskEvent(eventType Type, taskID int, task *domain.Task) *TaskEvent {
	var snapshot *domain.Task
	if task != nil {
		t := *task
		snapshot = &t
	}

	return &TaskEvent{
		ID:        uuid.New(),
		Type:      eventType,
		TaskID:    taskID,
		Task:      snapshot,
		CreatedAt: time.Now().UTC(),
	}
}

// EventHandler processes task events.
type EventHandler interface {
	HandleEvent(ctx context.Context, event *TaskEvent) error
}

// EventEmitter publishes events without knowledge of their handlers.
type EventEmitter interface {
	EmitEvent(ctx context.Context, event *TaskEvent) error
}

// HandlerFunc adapts a function to the EventHandler interface.
type HandlerFunc func(ctx context.Context, event *TaskEvent) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *TaskEvent) error {
	return f(ctx, event)
}
