package testutil

import (
	"tasktrack/internal/service"
	"tasktrack/internal/store"
)

// FakeService wraps an in-memory store and records calls.
// Set an error field to make the matching operation fail without touching the store.
type FakeService struct {
	*store.Store

	// Calls lists the operations invoked, in order.
	Calls []string

	// Error injection for testing
	UpdateTaskErr       error
	ToggleCompletionErr error
	DeleteTaskErr       error
}

// NewFakeService creates a FakeService over an empty store.
func NewFakeService() *FakeService {
	return &FakeService{Store: store.New()}
}

// AddTask adds a task directly to the underlying store.
func (f *FakeService) AddTask(title string, priority service.Priority) service.Task {
	return f.Store.CreateTask(title, nil, priority)
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(title string, description *string, priority service.Priority) service.Task {
	f.Calls = append(f.Calls, "CreateTask")
	return f.Store.CreateTask(title, description, priority)
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(id int, u service.TaskUpdate) (service.Task, error) {
	f.Calls = append(f.Calls, "UpdateTask")
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	return f.Store.UpdateTask(id, u)
}

// ToggleCompletion implements service.Service.
func (f *FakeService) ToggleCompletion(id int) (service.Task, error) {
	f.Calls = append(f.Calls, "ToggleCompletion")
	if f.ToggleCompletionErr != nil {
		return service.Task{}, f.ToggleCompletionErr
	}
	return f.Store.ToggleCompletion(id)
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(id int) error {
	f.Calls = append(f.Calls, "DeleteTask")
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	return f.Store.DeleteTask(id)
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks() []service.Entry {
	f.Calls = append(f.Calls, "ListTasks")
	return f.Store.ListTasks()
}

var _ service.Service = (*FakeService)(nil)
