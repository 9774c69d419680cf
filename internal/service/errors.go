package service

import (
	"errors"
	"fmt"
)

// ErrTaskNotFound is matched by every error reporting an unknown task id.
var ErrTaskNotFound = errors.New("task not found")

// NotFoundError reports an operation on an id that no task has.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}

// Is lets errors.Is(err, ErrTaskNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound
}

// IsNotFound reports whether err is a not-found outcome.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound)
}
