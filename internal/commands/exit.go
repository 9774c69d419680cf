package commands

import (
	"context"

	"tasktrack/internal/config"
	"tasktrack/internal/output"
	"tasktrack/internal/prompt"
	"tasktrack/internal/service"
)

func init() {
	Register(&ExitCmd{})
}

// ExitCmd implements the exit menu entry.
type ExitCmd struct{}

func (c *ExitCmd) Key() string       { return "6" }
func (c *ExitCmd) Name() string      { return "exit" }
func (c *ExitCmd) Aliases() []string { return []string{"quit", "q"} }
func (c *ExitCmd) Synopsis() string  { return "Exit" }

func (c *ExitCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out *output.Printer) error {
	out.Println("Goodbye!")
	return ErrExit
}
