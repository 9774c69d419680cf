package commands

import (
	"context"

	"tasktrack/internal/config"
	"tasktrack/internal/output"
	"tasktrack/internal/prompt"
	"tasktrack/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list menu entry.
type ListCmd struct{}

func (c *ListCmd) Key() string       { return "2" }
func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out *output.Printer) error {
	out.Entries(svc.ListTasks())
	return nil
}
