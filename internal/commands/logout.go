package commands

import (
	"context"
	"flag"
	"io"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd implements the logout command.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string          { return "logout" }
func (c *LogoutCmd) Aliases() []string     { return []string{"signout"} }
func (c *LogoutCmd) Synopsis() string      { return "Sign out" }
func (c *LogoutCmd) Usage() string         { return "taskpad logout" }
func (c *LogoutCmd) Requires() Requirement { return NeedsState }

func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LogoutCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	wasSignedIn, err := env.App.Logout(ctx)
	if err != nil {
		return fail(errOut, err)
	}
	if !wasSignedIn {
		return done(env, out, "not logged in")
	}
	return done(env, out, "ok")
}
