package commands

import (
	"context"

	"tasktrack/internal/config"
	"tasktrack/internal/output"
	"tasktrack/internal/prompt"
	"tasktrack/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle menu entry.
type ToggleCmd struct{}

func (c *ToggleCmd) Key() string       { return "4" }
func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string  { return "Toggle task status" }

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out *output.Printer) error {
	id, ok, err := readTaskID(ctx, in, out, "Task ID to toggle: ")
	if err != nil || !ok {
		return err
	}

	task, err := svc.ToggleCompletion(id)
	if service.IsNotFound(err) {
		out.Warn("Task with ID %d not found!", id)
		return nil
	}
	if err != nil {
		return err
	}

	out.Success("Task status changed: %s", output.FormatToggle(task))
	return nil
}
