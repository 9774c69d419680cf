// Package service defines the task model and the interface front ends use to manage tasks.
package service

// Task represents a single unit of work.
type Task struct {
	ID          int
	Title       string
	Description *string // nil when absent
	Priority    Priority
	Completed   bool
}

// Entry is a listed task with its 1-based display position.
type Entry struct {
	Position int
	Task     Task
}

// TaskUpdate carries the fields to overwrite on an existing task.
// Nil fields are left unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *Priority
}

// IsEmpty reports whether the update would change nothing.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Priority == nil
}

// StatusLabel returns the display label for a completion state.
func StatusLabel(completed bool) string {
	if completed {
		return "Done"
	}
	return "In Progress"
}

// Status returns the display label for the task's completion state.
func (t Task) Status() string {
	return StatusLabel(t.Completed)
}

// Clone returns a copy of t that shares no memory with it.
func (t Task) Clone() Task {
	if t.Description != nil {
		d := *t.Description
		t.Description = &d
	}
	return t
}

// String returns a pointer to s. Handy for building TaskUpdate values.
func String(s string) *string {
	return &s
}
