// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including leaving the menu.
	Success = 0

	// UserError indicates a user error (bad flags, unknown subcommand).
	UserError = 1

	// ConfigError indicates an unreadable or invalid config file.
	ConfigError = 2

	// IOError indicates the console could not be read or written.
	IOError = 3

	// Interrupted indicates the run was cancelled by a signal.
	Interrupted = 130
)
