package service

import (
	"strconv"
	"strings"
)

// Priority ranks a task from MinPriority (lowest) to MaxPriority.
type Priority int

const (
	// MinPriority is the lowest accepted priority on create.
	MinPriority Priority = 1

	// MaxPriority is the highest accepted priority on create.
	MaxPriority Priority = 5

	// DefaultPriority is used when the user gives no valid priority.
	DefaultPriority Priority = 3
)

// Valid reports whether p is within [MinPriority, MaxPriority].
func (p Priority) Valid() bool {
	return p >= MinPriority && p <= MaxPriority
}

// ParsePriority parses user input as a priority in range.
// Non-numeric or out-of-range input yields fallback and false.
func ParsePriority(input string, fallback Priority) (Priority, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return fallback, false
	}
	p := Priority(n)
	if !p.Valid() {
		return fallback, false
	}
	return p, true
}

// ParseOptionalPriority parses user input as an unchecked priority.
// Returns nil for empty or non-numeric input. Used on update, which
// does not range-check.
func ParseOptionalPriority(input string) *Priority {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return nil
	}
	p := Priority(n)
	return &p
}
