package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"taskpad/internal/app"
	"taskpad/internal/auth"
	"taskpad/internal/kv"
	"taskpad/internal/model"
)

// Now is the fixed clock used by NewApp.
var Now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

// NewStore opens an in-memory state store that is closed when the test ends.
func NewStore(t *testing.T) *kv.SQLite {
	t.Helper()
	s, err := kv.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// NewApp builds a hydrated App over store with a zero-delay mock provider,
// the fixed clock and sequential ids "task-1", "task-2", ...
func NewApp(t *testing.T, store kv.Store) *app.App {
	t.Helper()
	n := 0
	a := app.New(store, &auth.MockProvider{},
		app.WithClock(func() time.Time { return Now }),
		app.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("task-%d", n)
		}),
	)
	if err := a.Hydrate(context.Background()); err != nil {
		t.Fatalf("failed to hydrate app: %v", err)
	}
	return a
}

// SignedInApp returns NewApp over a fresh store with admin@test.com logged in.
func SignedInApp(t *testing.T) *app.App {
	t.Helper()
	a := NewApp(t, NewStore(t))
	if _, err := a.Login(context.Background(), "admin@test.com", "x"); err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	return a
}

// MustAdd adds a task or fails the test.
func MustAdd(t *testing.T, a *app.App, title string, p model.Priority) model.Task {
	t.Helper()
	tk, err := a.AddTask(context.Background(), app.NewTask{Title: title, Priority: p})
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	return tk
}
