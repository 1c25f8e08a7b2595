package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/exitcode"
	"taskpad/internal/output"
)

func init() {
	Register(&ListsCmd{})
}

// ListsCmd prints the Google task lists push can target.
type ListsCmd struct{}

func (c *ListsCmd) Name() string          { return "lists" }
func (c *ListsCmd) Aliases() []string     { return nil }
func (c *ListsCmd) Synopsis() string      { return "Print Google task lists" }
func (c *ListsCmd) Usage() string         { return "taskpad lists" }
func (c *ListsCmd) Requires() Requirement { return NeedsState }

func (c *ListsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListsCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	svc, code := openRemote(ctx, env, errOut)
	if code != exitcode.Success {
		return code
	}

	lists, err := svc.ListLists(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	theme := output.NewTheme(out, env.App.DarkMode())
	for _, list := range lists {
		output.FormatListName(out, theme, list)
	}

	return exitcode.Success
}
