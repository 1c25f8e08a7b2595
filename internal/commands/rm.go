package commands

import (
	"context"
	"flag"
	"io"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string          { return "rm" }
func (c *RmCmd) Aliases() []string     { return []string{"remove"} }
func (c *RmCmd) Synopsis() string      { return "Delete a task" }
func (c *RmCmd) Usage() string         { return "taskpad rm <ref>" }
func (c *RmCmd) Requires() Requirement { return NeedsSession }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	task, err := ResolveTaskRef(env.App.Tasks(), args)
	if err != nil {
		return fail(errOut, err)
	}

	if _, err := env.App.RemoveTask(ctx, task.ID); err != nil {
		return fail(errOut, err)
	}
	env.logger().Debug("task removed", "id", task.ID)

	return done(env, out, "ok")
}
