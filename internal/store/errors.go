package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrTaskNotFound indicates that the requested task does not exist in the store.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)
)

// TaskNotFoundError reports the id that was looked up and not found.
// It matches ErrTaskNotFound and ErrNotFound with errors.Is.
type TaskNotFoundError struct {
	ID int
}

// Error implements the error interface. The text is shown to API clients as is.
func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("Task with ID %d does not exist.", e.ID)
}

// Unwrap returns ErrTaskNotFound to support errors.Is/errors.As.
func (e *TaskNotFoundError) Unwrap() error {
	return ErrTaskNotFound
}

// NewTaskNotFoundError creates a TaskNotFoundError for id.
func NewTaskNotFoundError(id int) *TaskNotFoundError {
	return &TaskNotFoundError{ID: id}
}

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for unexpected store failures with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "task")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
