package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/exitcode"
	"taskpad/internal/model"
)

func init() {
	Register(&EditCmd{})
}

// optString is a string flag that remembers whether it was given.
type optString struct {
	value string
	set   bool
}

func (o *optString) String() string { return o.value }

func (o *optString) Set(s string) error {
	o.value = s
	o.set = true
	return nil
}

// EditCmd implements the edit command.
// It opens a draft for the task, applies the flags to it and saves it.
type EditCmd struct {
	title    optString
	priority optString
	due      optString
	noDue    bool
}

// SetTitle sets the --title flag (for testing).
func (c *EditCmd) SetTitle(s string) { c.title.Set(s) }

// SetPriority sets the --priority flag (for testing).
func (c *EditCmd) SetPriority(s string) { c.priority.Set(s) }

// SetDue sets the --due flag (for testing).
func (c *EditCmd) SetDue(s string) { c.due.Set(s) }

// SetNoDue sets the --no-due flag (for testing).
func (c *EditCmd) SetNoDue(v bool) { c.noDue = v }

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Change a task's title, priority or due date" }
func (c *EditCmd) Usage() string {
	return "taskpad edit [--title <t>] [--priority <p>] [--due <date> | --no-due] <ref>"
}
func (c *EditCmd) Requires() Requirement { return NeedsSession }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	c.title, c.priority, c.due, c.noDue = optString{}, optString{}, optString{}, false
	fs.Var(&c.title, "title", "")
	fs.Var(&c.title, "t", "")
	fs.Var(&c.priority, "priority", "")
	fs.Var(&c.priority, "p", "")
	fs.Var(&c.due, "due", "")
	fs.BoolVar(&c.noDue, "no-due", false, "")
}

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if c.due.set && c.noDue {
		fmt.Fprintln(errOut, "error: cannot use both --due and --no-due")
		return exitcode.UserError
	}
	if !c.title.set && !c.priority.set && !c.due.set && !c.noDue {
		fmt.Fprintln(errOut, "error: nothing to change (use --title, --priority, --due or --no-due)")
		return exitcode.UserError
	}

	task, err := ResolveTaskRef(env.App.Tasks(), args)
	if err != nil {
		return fail(errOut, err)
	}

	d, err := env.App.BeginEdit(task.ID)
	if err != nil {
		return fail(errOut, err)
	}

	if c.title.set {
		d.Title = c.title.value
	}
	if c.priority.set {
		p, err := model.ParsePriority(c.priority.value)
		if err != nil {
			env.App.CancelEdit()
			return fail(errOut, err)
		}
		d.Priority = p
	}
	switch {
	case c.noDue:
		d.DueDate = nil
	case c.due.set:
		due, err := model.ParseDueDate(c.due.value)
		if err != nil {
			env.App.CancelEdit()
			return fail(errOut, err)
		}
		d.DueDate = &due
	}

	if err := env.App.SaveEdit(ctx, d); err != nil {
		env.App.CancelEdit()
		return fail(errOut, err)
	}
	env.logger().Debug("task edited", "id", d.ID)

	return done(env, out, "ok")
}
