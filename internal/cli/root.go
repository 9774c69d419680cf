package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"tasktrack/internal/commands"
	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/store"
	"tasktrack/internal/tui"
	"tasktrack/internal/version"
)

// ExitError carries a process exit code out of a command.
// Err is nil when the failure was already reported.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// rootOptions holds the persistent flag values.
type rootOptions struct {
	configDir string
	quiet     bool
	debug     bool
	noColor   bool
}

// setup loads the config and builds the logger and task store shared by subcommands.
func (o *rootOptions) setup(errOut io.Writer) (*config.Config, *slog.Logger, *store.Store, error) {
	cfg, err := config.New(o.configDir)
	if err != nil {
		return nil, nil, nil, &ExitError{Code: exitcode.ConfigError, Err: err}
	}
	cfg.Quiet = o.quiet
	cfg.Debug = o.debug
	if o.noColor {
		cfg.Display.Color = false
	}

	log := newLogger(errOut, cfg.Debug)
	log.Debug("config loaded", "dir", cfg.Dir, "default_priority", cfg.Tasks.DefaultPriority)

	return cfg, log, store.New(store.WithLogger(log)), nil
}

// newLogger returns a text logger on w at debug level, or a discarding logger.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// NewRootCmd builds the tasktrack command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "tasktrack",
		Short:         "Interactive in-memory task tracker",
		Long:          `tasktrack keeps a list of tasks for the length of one session. Create, list, update, complete and delete tasks from a numbered menu.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, svc, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			menu := NewMenu(commands.DefaultRegistry, svc, cfg, log)
			if code := menu.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()); code != exitcode.Success {
				return &ExitError{Code: code}
			}
			return nil
		},
	}
	root.SetVersionTemplate("tasktrack {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configDir, "config", "", "override config directory")
	flags.BoolVar(&opts.quiet, "quiet", false, "suppress the menu and prompts")
	flags.BoolVar(&opts.debug, "debug", false, "print debug logs to stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable styled output")

	root.AddCommand(newTUICmd(opts), newVersionCmd())
	return root
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Manage tasks in a full-screen interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, svc, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			log.Debug("starting tui")

			err = tui.Run(cmd.Context(), svc, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			if errors.Is(err, context.Canceled) {
				return &ExitError{Code: exitcode.Interrupted}
			}
			if err != nil {
				return &ExitError{Code: exitcode.IOError, Err: err}
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// Execute runs the root command with args and returns the exit code.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitcode.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(errOut, "error: %v\n", exitErr.Err)
		}
		return exitErr.Code
	}

	// Flag and argument errors from cobra
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}
