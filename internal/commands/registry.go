package commands

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"tasktrack/internal/output"
)

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command // key, name and aliases map to command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the key, name or any alias is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := append([]string{c.Key(), c.Name()}, c.Aliases()...)
	for _, n := range names {
		n = normalize(n)
		if _, exists := r.cmds[n]; exists {
			return fmt.Errorf("command already registered: %s", n)
		}
	}

	for _, n := range names {
		r.cmds[normalize(n)] = c
	}
	return nil
}

// Find looks up a command by menu key, name or alias.
// Matching ignores case and surrounding whitespace.
func (r *Registry) Find(choice string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[normalize(choice)]
	return cmd, ok
}

// All returns all unique commands in menu order.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Collect unique commands by key
	seen := make(map[string]Command)
	for _, cmd := range r.cmds {
		seen[cmd.Key()] = cmd
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})

	result := make([]Command, len(keys))
	for i, k := range keys {
		result[i] = seen[k]
	}
	return result
}

// MenuItems returns the menu entries for all commands, in menu order.
func (r *Registry) MenuItems() []output.MenuItem {
	cmds := r.All()
	items := make([]output.MenuItem, len(cmds))
	for i, c := range cmds {
		items[i] = output.MenuItem{Key: c.Key(), Label: c.Synopsis()}
	}
	return items
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
