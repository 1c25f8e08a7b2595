package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"taskpad/internal/exitcode"
	"taskpad/internal/mcp"
)

func init() {
	Register(&MCPCmd{in: os.Stdin})
}

// MCPCmd serves the task store as MCP tools over stdio.
type MCPCmd struct {
	in io.Reader
}

// SetInput sets the request stream (for testing).
func (c *MCPCmd) SetInput(in io.Reader) {
	c.in = in
}

func (c *MCPCmd) Name() string          { return "mcp" }
func (c *MCPCmd) Aliases() []string     { return nil }
func (c *MCPCmd) Synopsis() string      { return "Serve tasks to MCP clients over stdio" }
func (c *MCPCmd) Usage() string         { return "taskpad mcp" }
func (c *MCPCmd) Requires() Requirement { return NeedsSession }

func (c *MCPCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MCPCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	in := c.in
	if in == nil {
		in = os.Stdin
	}

	env.logger().Debug("serving mcp on stdio")
	s := mcp.NewServer(env.App, Version)
	if err := mcp.Serve(ctx, s, in, out); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(errOut, "error: mcp server: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
