package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskpad/internal/app"
	"taskpad/internal/exitcode"
	"taskpad/internal/model"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	priority string
	due      string
}

// SetOptions sets the priority and due date flags (for testing).
func (c *AddCmd) SetOptions(priority, due string) {
	c.priority = priority
	c.due = due
}

func (c *AddCmd) Name() string          { return "add" }
func (c *AddCmd) Aliases() []string     { return []string{"create"} }
func (c *AddCmd) Synopsis() string      { return "Create a task" }
func (c *AddCmd) Usage() string         { return "taskpad add [--priority <p>] [--due <date>] <title...>" }
func (c *AddCmd) Requires() Requirement { return NeedsSession }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
	fs.StringVar(&c.due, "due", "", "")
}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	priority, err := model.ParsePriority(c.priority)
	if err != nil {
		return fail(errOut, err)
	}

	in := app.NewTask{Title: title, Priority: priority}
	if c.due != "" {
		due, err := model.ParseDueDate(c.due)
		if err != nil {
			return fail(errOut, err)
		}
		in.DueDate = &due
	}

	t, err := env.App.AddTask(ctx, in)
	if err != nil {
		return fail(errOut, err)
	}
	env.logger().Debug("task added", "id", t.ID)

	return done(env, out, "ok")
}
