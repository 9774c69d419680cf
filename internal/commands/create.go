package commands

import (
	"context"
	"fmt"
	"strings"

	"tasktrack/internal/config"
	"tasktrack/internal/output"
	"tasktrack/internal/prompt"
	"tasktrack/internal/service"
)

func init() {
	Register(&CreateCmd{})
}

// CreateCmd implements the create menu entry.
type CreateCmd struct{}

func (c *CreateCmd) Key() string       { return "1" }
func (c *CreateCmd) Name() string      { return "create" }
func (c *CreateCmd) Aliases() []string { return []string{"add", "new"} }
func (c *CreateCmd) Synopsis() string  { return "Create task" }

func (c *CreateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out *output.Printer) error {
	title, err := in.Line(ctx, "Task title: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		out.Error("title required")
		return nil
	}

	desc, err := in.Optional(ctx, "Description (optional): ")
	if err != nil {
		return err
	}

	raw, err := in.Line(ctx, fmt.Sprintf("Priority (%d-%d): ", service.MinPriority, service.MaxPriority))
	if err != nil {
		return err
	}
	priority := readPriority(raw, cfg.DefaultPriority(), out)

	task := svc.CreateTask(title, desc, priority)
	out.Success("Task created: %s", output.FormatTask(task))
	return nil
}

// readPriority converts a priority answer for a new task.
// An empty answer silently takes def; an invalid one takes def with a notice.
func readPriority(raw string, def service.Priority, out *output.Printer) service.Priority {
	if strings.TrimSpace(raw) == "" {
		return def
	}
	p, ok := service.ParsePriority(raw, def)
	if !ok {
		out.Warn("Invalid or out-of-range priority, using default: %d", def)
	}
	return p
}
