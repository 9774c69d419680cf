package commands

import (
	"context"

	"tasktrack/internal/config"
	"tasktrack/internal/output"
	"tasktrack/internal/prompt"
	"tasktrack/internal/service"
)

func init() {
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete menu entry.
type DeleteCmd struct{}

func (c *DeleteCmd) Key() string       { return "5" }
func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return []string{"rm"} }
func (c *DeleteCmd) Synopsis() string  { return "Delete task" }

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out *output.Printer) error {
	id, ok, err := readTaskID(ctx, in, out, "Task ID to delete: ")
	if err != nil || !ok {
		return err
	}

	err = svc.DeleteTask(id)
	if service.IsNotFound(err) {
		out.Warn("Delete failed: task not found")
		return nil
	}
	if err != nil {
		return err
	}

	out.Success("Task deleted")
	return nil
}
