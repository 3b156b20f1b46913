package domain

// Task is the single resource managed by the service.
// ID is assigned by the store and never changes after creation.
type Task struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status bool   `json:"status"`
}

// NewTask returns a task in its initial state: not yet completed.
func NewTask(id int, name string) Task {
	return Task{
		ID:     id,
		Name:   name,
		Status: false,
	}
}
