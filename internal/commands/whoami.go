package commands

import (
	"context"
	"flag"
	"io"

	"taskpad/internal/exitcode"
	"taskpad/internal/output"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd prints the signed-in user.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string          { return "whoami" }
func (c *WhoamiCmd) Aliases() []string     { return nil }
func (c *WhoamiCmd) Synopsis() string      { return "Print the signed-in user" }
func (c *WhoamiCmd) Usage() string         { return "taskpad whoami" }
func (c *WhoamiCmd) Requires() Requirement { return NeedsSession }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	sess := env.App.Session()
	if sess.User == nil {
		return fail(errOut, ErrNotLoggedIn)
	}
	output.FormatUser(out, output.NewTheme(out, env.App.DarkMode()), *sess.User)
	return exitcode.Success
}
