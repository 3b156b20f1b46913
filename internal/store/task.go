package store

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task storage.
// Implementations own the task collection and assign ids.
type TaskStore interface {
	// List returns every task in creation order.
	// An empty store yields an empty, non-nil slice.
	List(ctx context.Context) ([]domain.Task, error)

	// Create stores a new task named name with the next id and status false.
	// Ids are strictly increasing and never reused, even after Delete.
	Create(ctx context.Context, name string) (*domain.Task, error)

	// Update replaces the name and status of the task with the given id.
	// The id itself never changes.
	// Returns a *TaskNotFoundError if the task does not exist.
	Update(ctx context.Context, id int, name string, status bool) (*domain.Task, error)

	// Delete removes the task with the given id permanently.
	// Returns a *TaskNotFoundError if the task does not exist.
	Delete(ctx context.Context, id int) error
}
