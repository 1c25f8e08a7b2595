package commands_test

import (
	"context"
	"flag"
	"io"
	"testing"

	"taskpad/internal/commands"
)

type stubCmd struct {
	name    string
	aliases []string
}

func (c *stubCmd) Name() string                   { return c.name }
func (c *stubCmd) Aliases() []string              { return c.aliases }
func (c *stubCmd) Synopsis() string               { return "" }
func (c *stubCmd) Usage() string                  { return "" }
func (c *stubCmd) Requires() commands.Requirement { return commands.NeedsNothing }
func (c *stubCmd) RegisterFlags(fs *flag.FlagSet) {}
func (c *stubCmd) Run(ctx context.Context, env *commands.Env, args []string, out, errOut io.Writer) int {
	return 0
}

func TestRegistry_FindByNameAndAlias(t *testing.T) {
	r := commands.NewRegistry()
	rm := &stubCmd{name: "rm", aliases: []string{"remove"}}
	if err := r.Register(rm); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	for _, name := range []string{"rm", "remove", "RM", "Remove"} {
		got, ok := r.Find(name)
		if !ok || got != rm {
			t.Errorf("Find(%q) = %v, %v; want rm", name, got, ok)
		}
	}
	if _, ok := r.Find("delete"); ok {
		t.Error("expected unknown name not found")
	}
}

func TestRegistry_RejectsClash(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&stubCmd{name: "list", aliases: []string{"ls"}}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// The clash is on the alias; the name must not be added either.
	err := r.Register(&stubCmd{name: "lists", aliases: []string{"LS"}})
	if err == nil {
		t.Fatal("expected alias clash error")
	}
	if _, ok := r.Find("lists"); ok {
		t.Error("expected failed registration to add nothing")
	}

	if err := r.Register(&stubCmd{name: "List"}); err == nil {
		t.Error("expected case-insensitive name clash error")
	}
}

func TestDefaultRegistry_ShipsEveryCommand(t *testing.T) {
	names := []string{
		"login", "signin", "logout", "signout", "whoami",
		"add", "create", "list", "ls", "show", "edit", "rm", "remove",
		"theme", "connect", "disconnect", "lists", "push", "export",
		"mcp", "help", "version",
	}
	for _, name := range names {
		if _, ok := commands.DefaultRegistry.Find(name); !ok {
			t.Errorf("expected %q registered", name)
		}
	}
}
