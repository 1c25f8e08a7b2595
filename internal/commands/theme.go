package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskpad/internal/exitcode"
	"taskpad/internal/output"
)

func init() {
	Register(&ThemeCmd{})
}

// ThemeCmd shows or changes the persisted color theme.
type ThemeCmd struct{}

func (c *ThemeCmd) Name() string          { return "theme" }
func (c *ThemeCmd) Aliases() []string     { return nil }
func (c *ThemeCmd) Synopsis() string      { return "Show or set the color theme" }
func (c *ThemeCmd) Usage() string         { return "taskpad theme [dark|light|toggle]" }
func (c *ThemeCmd) Requires() Requirement { return NeedsState }

func (c *ThemeCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ThemeCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	if len(args) == 0 {
		fmt.Fprintln(out, output.NewTheme(out, env.App.DarkMode()).Name())
		return exitcode.Success
	}

	var (
		dark bool
		err  error
	)
	switch strings.ToLower(args[0]) {
	case "dark":
		dark = true
		err = env.App.SetDarkMode(ctx, true)
	case "light":
		err = env.App.SetDarkMode(ctx, false)
	case "toggle":
		dark, err = env.App.ToggleDarkMode(ctx)
	default:
		fmt.Fprintf(errOut, "error: invalid theme: %s\n", args[0])
		return exitcode.UserError
	}
	if err != nil {
		return fail(errOut, err)
	}

	return done(env, out, output.NewTheme(out, dark).Name())
}
