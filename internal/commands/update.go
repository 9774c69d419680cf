package commands

import (
	"context"
	"strings"

	"tasktrack/internal/config"
	"tasktrack/internal/output"
	"tasktrack/internal/prompt"
	"tasktrack/internal/service"
)

func init() {
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update menu entry.
// Empty answers, and a blank title, leave the field unchanged. The new priority is not range-checked.
type UpdateCmd struct{}

func (c *UpdateCmd) Key() string       { return "3" }
func (c *UpdateCmd) Name() string      { return "update" }
func (c *UpdateCmd) Aliases() []string { return []string{"edit"} }
func (c *UpdateCmd) Synopsis() string  { return "Update task" }

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out *output.Printer) error {
	id, ok, err := readTaskID(ctx, in, out, "Task ID to update: ")
	if err != nil || !ok {
		return err
	}

	var u service.TaskUpdate
	if u.Title, err = in.Optional(ctx, "New title (leave empty to keep): "); err != nil {
		return err
	}
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		u.Title = nil
	}
	if u.Description, err = in.Optional(ctx, "New description (leave empty to keep): "); err != nil {
		return err
	}
	raw, err := in.Line(ctx, "New priority (leave empty to keep): ")
	if err != nil {
		return err
	}
	u.Priority = service.ParseOptionalPriority(raw)

	task, err := svc.UpdateTask(id, u)
	if service.IsNotFound(err) {
		out.Warn("Task with ID %d not found!", id)
		return nil
	}
	if err != nil {
		return err
	}

	out.Success("Task updated: %s", output.FormatTask(task))
	return nil
}
