package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"tasktrack/internal/output"
	"tasktrack/internal/prompt"
)

// ErrTaskIDRequired indicates no task id was given.
var ErrTaskIDRequired = errors.New("task id required")

// ErrInvalidTaskID indicates the answer was not a task id.
var ErrInvalidTaskID = errors.New("invalid task id")

// ParseTaskID parses a task id answer.
//
// Parsing rules:
// 1. Surrounding whitespace is ignored
// 2. An empty answer → ErrTaskIDRequired
// 3. An optional leading '#' is accepted (e.g., #3)
// 4. The rest must be all digits → the id
// 5. Otherwise → ErrInvalidTaskID
func ParseTaskID(input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, ErrTaskIDRequired
	}

	digits := strings.TrimPrefix(s, "#")
	if !isAllDigits(digits) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTaskID, s)
	}

	id, err := strconv.Atoi(digits)
	if err != nil {
		// Too large for int
		return 0, fmt.Errorf("%w: %s", ErrInvalidTaskID, s)
	}
	return id, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// readTaskID prompts for a task id. A bad answer is reported on out and ok is false.
// err is only set for input failures.
func readTaskID(ctx context.Context, in *prompt.Prompter, out *output.Printer, label string) (id int, ok bool, err error) {
	answer, err := in.Line(ctx, label)
	if err != nil {
		return 0, false, err
	}

	id, err = ParseTaskID(answer)
	if err != nil {
		out.Error("%v", err)
		return 0, false, nil
	}
	return id, true, nil
}
