package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskpad/internal/exitcode"
	"taskpad/internal/model"
	"taskpad/internal/service"
)

func init() {
	Register(&PushCmd{})
}

// PushCmd exports local tasks to a Google task list.
// Tasks whose title is already open in the target list are skipped.
type PushCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *PushCmd) SetListName(name string) {
	c.listName = name
}

func (c *PushCmd) Name() string          { return "push" }
func (c *PushCmd) Aliases() []string     { return []string{"export"} }
func (c *PushCmd) Synopsis() string      { return "Export tasks to Google Tasks" }
func (c *PushCmd) Usage() string         { return "taskpad push [--list <list-name>]" }
func (c *PushCmd) Requires() Requirement { return NeedsSession }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *PushCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	local := env.App.Tasks()
	if len(local) == 0 {
		return done(env, out, "no tasks found")
	}

	svc, code := openRemote(ctx, env, errOut)
	if code != exitcode.Success {
		return code
	}
	list, code := resolveRemoteList(ctx, svc, strings.TrimSpace(c.listName), errOut)
	if code != exitcode.Success {
		return code
	}

	open, err := svc.ListOpenTasks(ctx, list.ID)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	existing := make(map[string]bool, len(open))
	for _, t := range open {
		existing[titleKey(t.Title)] = true
	}

	var pushed, skipped int
	for _, t := range local {
		key := titleKey(t.Title)
		if existing[key] {
			skipped++
			continue
		}
		if err := svc.CreateTask(ctx, list.ID, toRemote(t)); err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
		existing[key] = true
		pushed++
		env.logger().Debug("task pushed", "id", t.ID, "list", list.Title)
	}

	return done(env, out, fmt.Sprintf("pushed %d, skipped %d", pushed, skipped))
}

func titleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

func toRemote(t model.Task) service.Task {
	return service.Task{
		Title: t.Title,
		Notes: "priority: " + string(t.Priority),
		Due:   t.DueDate,
	}
}
