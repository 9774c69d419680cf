// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"strings"

	"tasktrack/internal/service"
)

const (
	// MenuTitle heads the main menu.
	MenuTitle = "=== Task Manager ==="

	// ListHeader heads a non-empty task listing.
	ListHeader = "Task list:"

	// EmptyList is printed instead of a listing when there are no tasks.
	EmptyList = "No tasks available"

	noDescription = "-"
)

// MenuItem is one numbered menu entry.
type MenuItem struct {
	Key   string
	Label string
}

// FormatMenuItem formats a menu line.
// Format: "{KEY}. {LABEL}"
func FormatMenuItem(item MenuItem) string {
	return fmt.Sprintf("%s. %s", item.Key, item.Label)
}

// FormatTask formats the full state of a task for confirmations.
// Format: "[ID: {ID}] {TITLE} | Description: {DESC|-} | Priority: {P} | Status: {STATUS}"
func FormatTask(task service.Task) string {
	desc := noDescription
	if task.Description != nil {
		desc = normalizeText(*task.Description, noDescription)
	}
	return fmt.Sprintf("[ID: %d] %s | Description: %s | Priority: %d | Status: %s",
		task.ID, normalizeTitle(task.Title), desc, task.Priority, task.Status())
}

// FormatEntry formats a task line for the listing.
// Format: "{N}. [ID: {ID}] {TITLE} - Priority: {P} ({STATUS})"
func FormatEntry(e service.Entry) string {
	return fmt.Sprintf("%d. [ID: %d] %s - Priority: %d (%s)",
		e.Position, e.Task.ID, normalizeTitle(e.Task.Title), e.Task.Priority, e.Task.Status())
}

// FormatToggle formats the result of a completion toggle.
// Format: "{TITLE} -> {STATUS}"
func FormatToggle(task service.Task) string {
	return fmt.Sprintf("%s -> %s", normalizeTitle(task.Title), task.Status())
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	return normalizeText(title, "(untitled)")
}

func normalizeText(s, empty string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")

	if strings.TrimSpace(s) == "" {
		return empty
	}
	return s
}
