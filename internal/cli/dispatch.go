package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"taskpad/internal/app"
	"taskpad/internal/auth"
	"taskpad/internal/commands"
	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/kv"
)

// AppFactory opens the durable store and returns a hydrated App.
type AppFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app.App, error)

// OpenApp is the production AppFactory: a sqlite store under the config
// directory and the mock identity provider.
func OpenApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app.App, error) {
	if err := cfg.EnsureDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	db, err := kv.Open(cfg.DBPath())
	if err != nil {
		return nil, err
	}

	a := app.New(db, &auth.MockProvider{Delay: cfg.LoginDelay}, app.WithLogger(logger))
	if err := a.Hydrate(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	apps     AppFactory
	remote   commands.RemoteFactory
}

// NewDispatcher creates a new dispatcher with the given registry and factories.
func NewDispatcher(registry *commands.Registry, apps AppFactory, remote commands.RemoteFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		apps:     apps,
		remote:   remote,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		args = []string{"list"}
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	// A positional arg starting with - is a flag placed after the first positional
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	logger := newLogger(errOut, debug)
	env := &commands.Env{
		Config: cfg,
		Remote: d.remote,
		Log:    logger,
	}

	if cmd.Requires() != commands.NeedsNothing {
		if d.apps == nil {
			fmt.Fprintln(errOut, "error: no state store configured")
			return exitcode.StorageError
		}
		a, err := d.apps(ctx, cfg, logger)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.StorageError
		}
		defer func() {
			if err := a.Close(); err != nil {
				logger.Warn("failed to close state store", "err", err)
			}
		}()
		env.App = a

		if cmd.Requires() == commands.NeedsSession && !a.Session().IsAuthenticated {
			fmt.Fprintf(errOut, "error: %v\n", commands.ErrNotLoggedIn)
			return exitcode.AuthError
		}
	}

	logger.Debug("running command", "command", cmd.Name(), "args", positionalArgs)
	return cmd.Run(ctx, env, positionalArgs, out, errOut)
}

// flagError rewrites flag package errors into the CLI's wording.
func flagError(err error) string {
	errStr := err.Error()

	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return "flag needs an argument: " + flagName
	}
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
		return "unknown flag: " + flagName
	}
	return errStr
}

// newLogger writes text logs to w at warn level, or debug level with --debug.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
