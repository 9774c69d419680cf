// Package commands provides the menu command interface and implementations.
package commands

import (
	"context"
	"errors"

	"tasktrack/internal/config"
	"tasktrack/internal/output"
	"tasktrack/internal/prompt"
	"tasktrack/internal/service"
)

// ErrExit is returned by a command that ends the menu loop.
var ErrExit = errors.New("exit requested")

// Command defines the interface for menu commands.
type Command interface {
	// Key returns the menu number the command is listed under.
	Key() string

	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns the menu label.
	Synopsis() string

	// Run executes the command.
	// in reads the command's answers; out receives results.
	// A task that does not exist is reported on out and is not an error.
	// Returns ErrExit to leave the menu, or an input error (io.EOF, ctx.Err()).
	Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out *output.Printer) error
}
