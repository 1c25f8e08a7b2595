package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"taskpad/internal/app"
	"taskpad/internal/backend/googletasks"
	"taskpad/internal/commands"
	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/kv"
	"taskpad/internal/model"
	"taskpad/internal/service"
	"taskpad/internal/testutil"
)

// newEnv builds a command environment around a and an optional FakeService.
func newEnv(t *testing.T, a *app.App, svc *testutil.FakeService, quiet bool) *commands.Env {
	t.Helper()
	env := &commands.Env{
		Config: &config.Config{Dir: t.TempDir(), Quiet: quiet},
		App:    a,
	}
	if svc != nil {
		env.Remote = func(ctx context.Context, cfg *config.Config) (service.Service, error) {
			return svc, nil
		}
	}
	return env
}

// runCommand is a helper to run a command against env.
func runCommand(t *testing.T, cmd commands.Command, env *commands.Env, args []string) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	code = cmd.Run(context.Background(), env, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func expectResult(t *testing.T, gotOut, gotErr string, gotCode int, wantOut, wantErr string, wantCode int) {
	t.Helper()
	if gotCode != wantCode {
		t.Errorf("expected exit code %d, got %d", wantCode, gotCode)
	}
	if gotOut != wantOut {
		t.Errorf("expected stdout %q, got %q", wantOut, gotOut)
	}
	if gotErr != wantErr {
		t.Errorf("expected stderr %q, got %q", wantErr, gotErr)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.VersionCmd{}, newEnv(t, nil, nil, false), nil)
	expectResult(t, stdout, stderr, code, "taskpad 0.1.0\n", "", exitcode.Success)
}

func TestHelpCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.HelpCmd{}, newEnv(t, nil, nil, false), nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "help", stdout)
}

func TestAddAndListCommands(t *testing.T) {
	a := testutil.SignedInApp(t)
	env := newEnv(t, a, nil, false)

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, env, []string{"Buy", "milk"})
	expectResult(t, stdout, stderr, code, "ok\n", "", exitcode.Success)

	add := &commands.AddCmd{}
	add.SetOptions("high", "2026-10-20")
	stdout, stderr, code = runCommand(t, add, env, []string{"Ship it"})
	expectResult(t, stdout, stderr, code, "ok\n", "", exitcode.Success)

	stdout, stderr, code = runCommand(t, &commands.ListCmd{}, env, nil)
	want := "   1  [medium]  Buy milk\n" +
		"   2  [high]    Ship it  (due Oct 20, 2026)\n"
	expectResult(t, stdout, stderr, code, want, "", exitcode.Success)
}

func TestAddCommand_QuietSuppressesOK(t *testing.T) {
	a := testutil.SignedInApp(t)

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, newEnv(t, a, nil, true), []string{"Silent"})
	expectResult(t, stdout, stderr, code, "", "", exitcode.Success)
	if len(a.Tasks()) != 1 {
		t.Errorf("expected task added, got %+v", a.Tasks())
	}
}

func TestAddCommand_Validation(t *testing.T) {
	tests := []struct {
		name     string
		priority string
		due      string
		args     []string
		wantErr  string
	}{
		{"no title", "", "", nil, "error: title required\n"},
		{"blank title", "", "", []string{"  "}, "error: title required\n"},
		{"bad priority", "urgent", "", []string{"x"}, "error: invalid priority: urgent\n"},
		{"bad due", "", "tomorrow", []string{"x"}, "error: invalid due date: tomorrow\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testutil.SignedInApp(t)
			cmd := &commands.AddCmd{}
			cmd.SetOptions(tt.priority, tt.due)

			stdout, stderr, code := runCommand(t, cmd, newEnv(t, a, nil, false), tt.args)
			expectResult(t, stdout, stderr, code, "", tt.wantErr, exitcode.UserError)
			if len(a.Tasks()) != 0 {
				t.Errorf("expected no tasks, got %+v", a.Tasks())
			}
		})
	}
}

type failingStore struct{ kv.Store }

func (failingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("disk full")
}

func TestAddCommand_StorageError(t *testing.T) {
	a := testutil.NewApp(t, failingStore{testutil.NewStore(t)})

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, newEnv(t, a, nil, false), []string{"x"})
	expectResult(t, stdout, stderr, code, "", "error: storage error: disk full\n", exitcode.StorageError)
}

func TestListCommand_Empty(t *testing.T) {
	a := testutil.SignedInApp(t)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, newEnv(t, a, nil, false), nil)
	expectResult(t, stdout, stderr, code, "no tasks found\n", "", exitcode.Success)

	stdout, stderr, code = runCommand(t, &commands.ListCmd{}, newEnv(t, a, nil, true), nil)
	expectResult(t, stdout, stderr, code, "", "", exitcode.Success)
}

func TestShowCommand(t *testing.T) {
	a := testutil.SignedInApp(t)
	testutil.MustAdd(t, a, "Buy milk", model.PriorityLow)

	stdout, stderr, code := runCommand(t, &commands.ShowCmd{}, newEnv(t, a, nil, false), []string{"1"})
	want := "id:       task-1\n" +
		"title:    Buy milk\n" +
		"priority: [low]\n" +
		"created:  Oct 17, 2026\n"
	expectResult(t, stdout, stderr, code, want, "", exitcode.Success)

	stdout, stderr, code = runCommand(t, &commands.ShowCmd{}, newEnv(t, a, nil, false), nil)
	expectResult(t, stdout, stderr, code, "", "error: task reference required\n", exitcode.UserError)
}

func TestEditCommand(t *testing.T) {
	a := testutil.SignedInApp(t)
	env := newEnv(t, a, nil, false)
	testutil.MustAdd(t, a, "First", model.PriorityLow)
	testutil.MustAdd(t, a, "Second", model.PriorityLow)

	cmd := &commands.EditCmd{}
	cmd.SetTitle("Second (edited)")
	cmd.SetPriority("high")
	cmd.SetDue("2026-12-01")
	stdout, stderr, code := runCommand(t, cmd, env, []string{"task-2"})
	expectResult(t, stdout, stderr, code, "ok\n", "", exitcode.Success)

	got := a.Tasks()[1]
	if got.Title != "Second (edited)" || got.Priority != model.PriorityHigh || got.DueDate == nil {
		t.Errorf("edit not applied: %+v", got)
	}
	if a.Tasks()[0].Title != "First" {
		t.Errorf("other task changed: %+v", a.Tasks()[0])
	}

	cmd = &commands.EditCmd{}
	cmd.SetNoDue(true)
	stdout, stderr, code = runCommand(t, cmd, env, []string{"2"})
	expectResult(t, stdout, stderr, code, "ok\n", "", exitcode.Success)
	if a.Tasks()[1].DueDate != nil {
		t.Error("expected due date cleared")
	}
}

func TestEditCommand_Errors(t *testing.T) {
	a := testutil.SignedInApp(t)
	env := newEnv(t, a, nil, false)
	testutil.MustAdd(t, a, "Keep", model.PriorityMedium)

	stdout, stderr, code := runCommand(t, &commands.EditCmd{}, env, []string{"1"})
	expectResult(t, stdout, stderr, code, "", "error: nothing to change (use --title, --priority, --due or --no-due)\n", exitcode.UserError)

	cmd := &commands.EditCmd{}
	cmd.SetDue("2026-12-01")
	cmd.SetNoDue(true)
	stdout, stderr, code = runCommand(t, cmd, env, []string{"1"})
	expectResult(t, stdout, stderr, code, "", "error: cannot use both --due and --no-due\n", exitcode.UserError)

	cmd = &commands.EditCmd{}
	cmd.SetTitle("  ")
	stdout, stderr, code = runCommand(t, cmd, env, []string{"1"})
	expectResult(t, stdout, stderr, code, "", "error: title required\n", exitcode.UserError)
	if _, ok := a.CurrentEdit(); ok {
		t.Error("expected draft discarded after failed edit")
	}

	cmd = &commands.EditCmd{}
	cmd.SetTitle("x")
	stdout, stderr, code = runCommand(t, cmd, env, []string{"9"})
	expectResult(t, stdout, stderr, code, "", "error: task number out of range: 9\n", exitcode.UserError)

	if a.Tasks()[0].Title != "Keep" {
		t.Errorf("expected task unchanged, got %+v", a.Tasks()[0])
	}
}

func TestRmCommand(t *testing.T) {
	a := testutil.SignedInApp(t)
	env := newEnv(t, a, nil, false)
	testutil.MustAdd(t, a, "One", model.PriorityMedium)
	testutil.MustAdd(t, a, "Two", model.PriorityMedium)

	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, env, []string{"1"})
	expectResult(t, stdout, stderr, code, "ok\n", "", exitcode.Success)

	tasks := a.Tasks()
	if len(tasks) != 1 || tasks[0].Title != "Two" {
		t.Errorf("expected only Two left, got %+v", tasks)
	}

	stdout, stderr, code = runCommand(t, &commands.RmCmd{}, env, []string{"task-1"})
	expectResult(t, stdout, stderr, code, "", "error: task not found: task-1\n", exitcode.UserError)

	stdout, stderr, code = runCommand(t, &commands.RmCmd{}, env, []string{"5"})
	expectResult(t, stdout, stderr, code, "", "error: task number out of range: 5\n", exitcode.UserError)
}

func TestWhoamiCommand(t *testing.T) {
	a := testutil.SignedInApp(t)

	stdout, stderr, code := runCommand(t, &commands.WhoamiCmd{}, newEnv(t, a, nil, false), nil)
	expectResult(t, stdout, stderr, code, "admin <admin@test.com>\n", "", exitcode.Success)

	signedOut := testutil.NewApp(t, testutil.NewStore(t))
	stdout, stderr, code = runCommand(t, &commands.WhoamiCmd{}, newEnv(t, signedOut, nil, false), nil)
	expectResult(t, stdout, stderr, code, "", "error: not logged in (run: taskpad login)\n", exitcode.AuthError)
}

func TestThemeCommand(t *testing.T) {
	a := testutil.NewApp(t, testutil.NewStore(t))
	env := newEnv(t, a, nil, false)

	tests := []struct {
		args     []string
		wantOut  string
		wantDark bool
	}{
		{nil, "light\n", false},
		{[]string{"dark"}, "dark\n", true},
		{[]string{"toggle"}, "light\n", false},
		{[]string{"TOGGLE"}, "dark\n", true},
		{[]string{"light"}, "light\n", false},
	}
	for _, tt := range tests {
		stdout, stderr, code := runCommand(t, &commands.ThemeCmd{}, env, tt.args)
		expectResult(t, stdout, stderr, code, tt.wantOut, "", exitcode.Success)
		if a.DarkMode() != tt.wantDark {
			t.Errorf("theme %v: expected dark=%v", tt.args, tt.wantDark)
		}
	}

	stdout, stderr, code := runCommand(t, &commands.ThemeCmd{}, env, []string{"blue"})
	expectResult(t, stdout, stderr, code, "", "error: invalid theme: blue\n", exitcode.UserError)
}

func TestPushCommand(t *testing.T) {
	a := testutil.SignedInApp(t)
	testutil.MustAdd(t, a, "Buy milk", model.PriorityHigh)
	testutil.MustAdd(t, a, "Call mom", model.PriorityLow)

	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultListID, "remote1", "buy milk ")

	stdout, stderr, code := runCommand(t, &commands.PushCmd{}, newEnv(t, a, svc, false), nil)
	expectResult(t, stdout, stderr, code, "pushed 1, skipped 1\n", "", exitcode.Success)

	remote := svc.Tasks(testutil.DefaultListID)
	if len(remote) != 2 {
		t.Fatalf("expected 2 remote tasks, got %+v", remote)
	}
	if remote[1].Title != "Call mom" || remote[1].Notes != "priority: low" {
		t.Errorf("unexpected pushed task: %+v", remote[1])
	}

	stdout, stderr, code = runCommand(t, &commands.PushCmd{}, newEnv(t, a, svc, false), nil)
	expectResult(t, stdout, stderr, code, "pushed 0, skipped 2\n", "", exitcode.Success)
}

func TestPushCommand_NamedList(t *testing.T) {
	a := testutil.SignedInApp(t)
	testutil.MustAdd(t, a, "Ship it", model.PriorityHigh)

	svc := testutil.NewFakeService()
	svc.AddList("work", "Work")

	cmd := &commands.PushCmd{}
	cmd.SetListName("work")
	stdout, stderr, code := runCommand(t, cmd, newEnv(t, a, svc, false), nil)
	expectResult(t, stdout, stderr, code, "pushed 1, skipped 0\n", "", exitcode.Success)
	if len(svc.Tasks("work")) != 1 {
		t.Errorf("expected task in Work, got %+v", svc.Tasks("work"))
	}

	cmd = &commands.PushCmd{}
	cmd.SetListName("Nope")
	stdout, stderr, code = runCommand(t, cmd, newEnv(t, a, svc, false), nil)
	expectResult(t, stdout, stderr, code, "", "error: list not found: Nope\n", exitcode.UserError)
}

func TestPushCommand_BackendErrors(t *testing.T) {
	a := testutil.SignedInApp(t)
	testutil.MustAdd(t, a, "x", model.PriorityMedium)

	svc := testutil.NewFakeService()
	svc.CreateTaskErr = errors.New("quota exceeded")
	stdout, stderr, code := runCommand(t, &commands.PushCmd{}, newEnv(t, a, svc, false), nil)
	expectResult(t, stdout, stderr, code, "", "error: backend error: quota exceeded\n", exitcode.BackendError)

	env := newEnv(t, a, nil, false)
	env.Remote = func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return nil, googletasks.ErrNotConnected
	}
	stdout, stderr, code = runCommand(t, &commands.PushCmd{}, env, nil)
	expectResult(t, stdout, stderr, code, "", "error: not connected to Google Tasks (run: taskpad connect)\n", exitcode.AuthError)
}

func TestPushCommand_NothingToPush(t *testing.T) {
	a := testutil.SignedInApp(t)
	svc := testutil.NewFakeService()

	stdout, stderr, code := runCommand(t, &commands.PushCmd{}, newEnv(t, a, svc, false), nil)
	expectResult(t, stdout, stderr, code, "no tasks found\n", "", exitcode.Success)
}

func TestListsCommand(t *testing.T) {
	a := testutil.NewApp(t, testutil.NewStore(t))
	svc := testutil.NewFakeService()
	svc.AddList("shopping", "Shopping")
	svc.AddList("work", "Work")

	stdout, stderr, code := runCommand(t, &commands.ListsCmd{}, newEnv(t, a, svc, false), nil)
	expectResult(t, stdout, stderr, code, "My Tasks [default]\nShopping\nWork\n", "", exitcode.Success)

	svc.ListListsErr = errors.New("boom")
	stdout, stderr, code = runCommand(t, &commands.ListsCmd{}, newEnv(t, a, svc, false), nil)
	expectResult(t, stdout, stderr, code, "", "error: backend error: boom\n", exitcode.BackendError)
}

func TestMCPCommand_StopsOnEOF(t *testing.T) {
	a := testutil.SignedInApp(t)
	cmd := &commands.MCPCmd{}
	cmd.SetInput(strings.NewReader(""))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var outBuf, errBuf bytes.Buffer
	code := cmd.Run(ctx, newEnv(t, a, nil, false), nil, &outBuf, &errBuf)
	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, errBuf.String())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, exitcode.Success},
		{app.ErrEmptyTitle, exitcode.UserError},
		{app.ErrPersist, exitcode.StorageError},
		{commands.ErrNotLoggedIn, exitcode.AuthError},
		{googletasks.ErrNoOAuthClient, exitcode.AuthError},
	}
	for _, tt := range tests {
		if got := commands.ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
