// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"
	"log/slog"

	"taskpad/internal/app"
	"taskpad/internal/config"
	"taskpad/internal/service"
)

// Requirement says what the dispatcher must prepare before a command runs.
type Requirement int

const (
	// NeedsNothing commands run with config only (help, version, connect).
	NeedsNothing Requirement = iota

	// NeedsState commands get a hydrated App but no signed-in user is required.
	NeedsState

	// NeedsSession commands get a hydrated App with a signed-in user.
	NeedsSession
)

// RemoteFactory creates the remote backend used by push and lists.
type RemoteFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// Env is what a command runs against.
type Env struct {
	// Config is always set.
	Config *config.Config

	// App is nil for NeedsNothing commands.
	App *app.App

	// Remote may be nil when no remote backend is wired.
	Remote RemoteFactory

	// Log writes diagnostics to stderr.
	Log *slog.Logger
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Requires reports what the command needs from the dispatcher.
	Requires() Requirement

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}

func (e *Env) logger() *slog.Logger {
	if e.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Log
}
