// Package config handles the configuration directory and the optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"tasktrack/internal/service"
)

const (
	// AppName is the application directory name.
	AppName = "tasktrack"

	// FileName is the config filename inside the config directory.
	FileName = "config.toml"
)

// ErrInvalid is matched by errors for config values out of range.
var ErrInvalid = errors.New("invalid config")

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `toml:"-"`

	// Debug enables debug logging.
	Debug bool `toml:"-"`

	// Quiet suppresses the menu banner and prompt labels.
	Quiet bool `toml:"-"`

	Tasks   TasksConfig   `toml:"tasks"`
	Display DisplayConfig `toml:"display"`
}

// TasksConfig holds task defaults.
type TasksConfig struct {
	// DefaultPriority replaces a missing or invalid priority on create.
	DefaultPriority int `toml:"default_priority"`
}

// DisplayConfig holds output settings.
type DisplayConfig struct {
	// Color enables styled output.
	Color bool `toml:"color"`
}

// Default returns the default configuration for dir.
func Default(dir string) *Config {
	return &Config{
		Dir: dir,
		Tasks: TasksConfig{
			DefaultPriority: int(service.DefaultPriority),
		},
		Display: DisplayConfig{
			Color: true,
		},
	}
}

// New creates a Config for the default or specified config directory and
// applies the config file if one exists there.
// If configDir is empty, uses XDG_CONFIG_HOME/tasktrack or $HOME/.config/tasktrack.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := Default(dir)
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the path to the config file.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, FileName)
}

// DefaultPriority returns the configured default priority.
func (c *Config) DefaultPriority() service.Priority {
	return service.Priority(c.Tasks.DefaultPriority)
}

// load decodes the config file over the current values. A missing file is not an error.
func (c *Config) load() error {
	data, err := os.ReadFile(c.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	md, err := toml.Decode(string(data), c)
	if err != nil {
		return fmt.Errorf("parsing config file %s: %w", c.Path(), err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, c.Path(), strings.Join(keys, ", "))
	}

	return c.Validate()
}

// Validate checks that settings are in range.
func (c *Config) Validate() error {
	if !c.DefaultPriority().Valid() {
		return fmt.Errorf("%w: tasks.default_priority must be between %d and %d, got %d",
			ErrInvalid, service.MinPriority, service.MaxPriority, c.Tasks.DefaultPriority)
	}
	return nil
}
