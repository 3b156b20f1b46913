package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	// Custom behavior functions
	ListTasksFn  func(ctx context.Context) ([]domain.Task, error)
	CreateTaskFn func(ctx context.Context, name string) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, id int, name string, status bool) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, id int) error

	// Default response values
	Tasks []domain.Task
	Task  *domain.Task
	Err   error

	mu    sync.Mutex
	calls map[string]int
}

func (m *MockTaskService) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// Calls returns how many times method was invoked.
func (m *MockTaskService) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// ListTasks implements the service.TaskService interface
func (m *MockTaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	m.record("ListTasks")
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return m.Tasks, m.Err
}

// CreateTask implements the service.TaskService interface
func (m *MockTaskService) CreateTask(ctx context.Context, name string) (*domain.Task, error) {
	m.record("CreateTask")
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, name)
	}
	return m.Task, m.Err
}

// UpdateTask implements the service.TaskService interface
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	id int,
	name string,
	status bool,
) (*domain.Task, error) {
	m.record("UpdateTask")
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, name, status)
	}
	return m.Task, m.Err
}

// DeleteTask implements the service.TaskService interface
func (m *MockTaskService) DeleteTask(ctx context.Context, id int) error {
	m.record("DeleteTask")
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return m.Err
}
