package service

// Service defines the task operations available to front ends.
// The menu loop and the TUI never touch task storage directly.
type Service interface {
	// CreateTask stores a new, not completed task and returns it.
	// The id is one greater than the last id handed out.
	// Priority is stored as given; callers range-check it.
	CreateTask(title string, description *string, priority Priority) Task

	// UpdateTask overwrites the non-nil fields of u on the task with the given id.
	// Returns the task after the update, or a *NotFoundError.
	UpdateTask(id int, u TaskUpdate) (Task, error)

	// ToggleCompletion flips the completion state of a task.
	// Returns the task with its new state, or a *NotFoundError.
	ToggleCompletion(id int) (Task, error)

	// DeleteTask removes a task. Returns a *NotFoundError if no task had the id.
	DeleteTask(id int) error

	// ListTasks returns all tasks in insertion order with 1-based positions.
	// Returns an empty slice if there are no tasks.
	ListTasks() []Entry
}
