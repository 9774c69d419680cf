// Package store provides the in-memory task store.
package store

import (
	"io"
	"log/slog"

	"tasktrack/internal/service"
)

// Store is an in-memory implementation of service.Service.
// Tasks live for the lifetime of the Store. It is not safe for concurrent use.
type Store struct {
	tasks  []service.Task
	lastID int
	log    *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger mutations are reported to at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates an empty Store. The first task gets id 1.
func New(opts ...Option) *Store {
	s := &Store{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTask implements service.Service.
func (s *Store) CreateTask(title string, description *string, priority service.Priority) service.Task {
	s.lastID++
	task := service.Task{
		ID:          s.lastID,
		Title:       title,
		Description: description,
		Priority:    priority,
	}
	task = task.Clone()
	s.tasks = append(s.tasks, task)

	s.log.Debug("task created", "id", task.ID, "title", task.Title, "priority", int(task.Priority))
	return task.Clone()
}

// UpdateTask implements service.Service.
func (s *Store) UpdateTask(id int, u service.TaskUpdate) (service.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("update: task not found", "id", id)
		return service.Task{}, &service.NotFoundError{ID: id}
	}

	task := &s.tasks[i]
	if u.Title != nil {
		task.Title = *u.Title
	}
	if u.Description != nil {
		d := *u.Description
		task.Description = &d
	}
	if u.Priority != nil {
		task.Priority = *u.Priority
	}

	s.log.Debug("task updated", "id", id, "title", task.Title, "noop", u.IsEmpty())
	return task.Clone(), nil
}

// ToggleCompletion implements service.Service.
func (s *Store) ToggleCompletion(id int) (service.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("toggle: task not found", "id", id)
		return service.Task{}, &service.NotFoundError{ID: id}
	}

	s.tasks[i].Completed = !s.tasks[i].Completed

	s.log.Debug("task toggled", "id", id, "completed", s.tasks[i].Completed)
	return s.tasks[i].Clone(), nil
}

// DeleteTask implements service.Service.
func (s *Store) DeleteTask(id int) error {
	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("delete: task not found", "id", id)
		return &service.NotFoundError{ID: id}
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	s.log.Debug("task deleted", "id", id)
	return nil
}

// ListTasks implements service.Service.
func (s *Store) ListTasks() []service.Entry {
	if len(s.tasks) == 0 {
		return nil
	}
	entries := make([]service.Entry, len(s.tasks))
	for i, t := range s.tasks {
		entries[i] = service.Entry{Position: i + 1, Task: t.Clone()}
	}
	return entries
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// indexOf returns the slice index of the task with the given id, or -1.
func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

var _ service.Service = (*Store)(nil)
