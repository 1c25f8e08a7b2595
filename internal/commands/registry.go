package commands

import (
	"fmt"
	"strings"
)

// Registry maps command names and aliases to commands.
// Keys are stored lowercased so lookups ignore case.
type Registry struct {
	cmds map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Command)}
}

// Register adds c under its name and every alias.
// Nothing is added if any of those keys is taken.
func (r *Registry) Register(c Command) error {
	keys := append([]string{c.Name()}, c.Aliases()...)
	for i, k := range keys {
		k = strings.ToLower(k)
		if prev, taken := r.cmds[k]; taken {
			return fmt.Errorf("command %s: %q already registered by %s", c.Name(), k, prev.Name())
		}
		keys[i] = k
	}
	for _, k := range keys {
		r.cmds[k] = c
	}
	return nil
}

// Find returns the command registered under name or one of its aliases.
func (r *Registry) Find(name string) (Command, bool) {
	cmd, ok := r.cmds[strings.ToLower(name)]
	return cmd, ok
}

// DefaultRegistry holds every command the binary ships. Commands add
// themselves from init.
var DefaultRegistry = NewRegistry()

// Register adds c to DefaultRegistry and panics on a clash.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
