// Package cli wires the command-line entry points: the menu loop and the root command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"tasktrack/internal/commands"
	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/output"
	"tasktrack/internal/prompt"
	"tasktrack/internal/service"
)

// Menu runs the interactive text menu against a task service.
type Menu struct {
	registry *commands.Registry
	svc      service.Service
	cfg      *config.Config
	log      *slog.Logger
}

// NewMenu creates a menu over the commands in registry.
func NewMenu(registry *commands.Registry, svc service.Service, cfg *config.Config, log *slog.Logger) *Menu {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Menu{
		registry: registry,
		svc:      svc,
		cfg:      cfg,
		log:      log,
	}
}

// Run shows the menu and dispatches choices until the user exits or input ends.
// Returns the exit code.
func (m *Menu) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	printer := output.NewPrinter(out, m.cfg.Display.Color)
	prompter := prompt.New(in, out, m.cfg.Quiet)
	defer prompter.Close()
	items := m.registry.MenuItems()

	for {
		if !m.cfg.Quiet {
			fmt.Fprintln(out)
			printer.Menu(items)
		}

		choice, err := prompter.Line(ctx, "Your choice: ")
		if err != nil {
			return m.finish(err, errOut)
		}

		choice = strings.TrimSpace(choice)
		if choice == "" {
			continue
		}

		cmd, ok := m.registry.Find(choice)
		if !ok {
			m.log.Debug("unknown menu choice", "choice", choice)
			printer.Warn("Invalid choice!")
			continue
		}

		m.log.Debug("running command", "command", cmd.Name())
		if err := cmd.Run(ctx, m.cfg, m.svc, prompter, printer); err != nil {
			return m.finish(err, errOut)
		}
	}
}

// finish maps the error that ended the loop to an exit code.
func (m *Menu) finish(err error, errOut io.Writer) int {
	switch {
	case errors.Is(err, commands.ErrExit):
		return exitcode.Success
	case errors.Is(err, io.EOF):
		m.log.Debug("input closed")
		return exitcode.Success
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintln(errOut, "\ninterrupted")
		return exitcode.Interrupted
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
}
