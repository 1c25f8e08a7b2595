package commands

import (
	"context"
	"flag"
	"io"

	"taskpad/internal/exitcode"
	"taskpad/internal/output"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd prints every field of one task.
type ShowCmd struct{}

func (c *ShowCmd) Name() string          { return "show" }
func (c *ShowCmd) Aliases() []string     { return nil }
func (c *ShowCmd) Synopsis() string      { return "Show task details" }
func (c *ShowCmd) Usage() string         { return "taskpad show <ref>" }
func (c *ShowCmd) Requires() Requirement { return NeedsSession }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	task, err := ResolveTaskRef(env.App.Tasks(), args)
	if err != nil {
		return fail(errOut, err)
	}
	output.FormatTaskDetail(out, output.NewTheme(out, env.App.DarkMode()), task)
	return exitcode.Success
}
