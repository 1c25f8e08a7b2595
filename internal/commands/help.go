package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string          { return "help" }
func (c *HelpCmd) Aliases() []string     { return nil }
func (c *HelpCmd) Synopsis() string      { return "Print usage" }
func (c *HelpCmd) Usage() string         { return "taskpad help" }
func (c *HelpCmd) Requires() Requirement { return NeedsNothing }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskpad                                            List tasks
  taskpad login --email <email> --password <password>
  taskpad logout
  taskpad whoami
  taskpad add [--priority <p>] [--due <date>] <title...>
  taskpad list
  taskpad show <ref>
  taskpad edit [--title <t>] [--priority <p>] [--due <date> | --no-due] <ref>
  taskpad rm <ref>
  taskpad theme [dark|light|toggle]
  taskpad connect                                    Authorize export to Google Tasks
  taskpad disconnect
  taskpad lists                                      Print Google task lists
  taskpad push [--list <list-name>]                  Export tasks to Google Tasks
  taskpad mcp                                        Serve tasks to MCP clients over stdio
  taskpad help
  taskpad version

A <ref> is a task number from 'taskpad list', a task id, or a unique id
prefix of at least 4 characters. Priorities are high, medium and low.
Dates are YYYY-MM-DD.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
