package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/exitcode"
)

func init() {
	Register(&DisconnectCmd{})
}

// DisconnectCmd removes the stored Google token.
type DisconnectCmd struct{}

func (c *DisconnectCmd) Name() string          { return "disconnect" }
func (c *DisconnectCmd) Aliases() []string     { return nil }
func (c *DisconnectCmd) Synopsis() string      { return "Remove the Google Tasks token" }
func (c *DisconnectCmd) Usage() string         { return "taskpad disconnect" }
func (c *DisconnectCmd) Requires() Requirement { return NeedsNothing }

func (c *DisconnectCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DisconnectCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if !env.Config.HasToken() {
		return done(env, out, "not connected")
	}

	if err := env.Config.RemoveToken(); err != nil {
		fmt.Fprintf(errOut, "error: failed to remove token: %v\n", err)
		return exitcode.AuthError
	}

	return done(env, out, "ok")
}
