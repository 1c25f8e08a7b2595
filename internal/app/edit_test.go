package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskpad/internal/app"
	"taskpad/internal/kv"
	"taskpad/internal/model"
	"taskpad/internal/testutil"
)

func TestApp_EditChangesOnlyEditableFields(t *testing.T) {
	store := testutil.NewStore(t)
	a := testutil.NewApp(t, store)
	ctx := context.Background()

	first, _ := a.AddTask(ctx, app.NewTask{Title: "First", Priority: model.PriorityLow})
	second, _ := a.AddTask(ctx, app.NewTask{Title: "Second", Priority: model.PriorityLow})

	d, err := a.BeginEdit(second.ID)
	if err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}
	due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	d.Title = "Second (edited)"
	d.Priority = model.PriorityHigh
	d.DueDate = &due

	if err := a.SaveEdit(ctx, d); err != nil {
		t.Fatalf("SaveEdit failed: %v", err)
	}

	tasks := a.Tasks()
	if tasks[0].Title != first.Title || tasks[0].Priority != first.Priority {
		t.Errorf("other task changed: %+v", tasks[0])
	}
	got := tasks[1]
	if got.ID != second.ID || !got.CreatedAt.Equal(second.CreatedAt) {
		t.Errorf("id/createdAt changed: %+v", got)
	}
	if got.Title != "Second (edited)" || got.Priority != model.PriorityHigh || !got.DueDate.Equal(due) {
		t.Errorf("edit not applied: %+v", got)
	}
	if _, ok := a.CurrentEdit(); ok {
		t.Error("expected edit slot cleared after save")
	}

	b := testutil.NewApp(t, store)
	if b.Tasks()[1].Title != "Second (edited)" {
		t.Errorf("expected edit persisted, got %+v", b.Tasks())
	}
}

func TestApp_CancelEditLeavesStoreUntouched(t *testing.T) {
	store := testutil.NewStore(t)
	a := testutil.NewApp(t, store)
	ctx := context.Background()

	tk, _ := a.AddTask(ctx, app.NewTask{Title: "Keep me"})
	before, _, _ := store.Get(ctx, kv.KeyTasks)

	d, _ := a.BeginEdit(tk.ID)
	d.Title = "Changed"
	a.CancelEdit()

	if got := a.Tasks()[0].Title; got != "Keep me" {
		t.Errorf("expected title unchanged, got %q", got)
	}
	after, _, _ := store.Get(ctx, kv.KeyTasks)
	if before != after {
		t.Error("expected persisted tasks unchanged")
	}

	if err := a.SaveEdit(ctx, d); !errors.Is(err, app.ErrNotEditing) {
		t.Errorf("expected ErrNotEditing after cancel, got %v", err)
	}
}

func TestApp_SaveEditValidation(t *testing.T) {
	a := testutil.NewApp(t, testutil.NewStore(t))
	ctx := context.Background()
	tk, _ := a.AddTask(ctx, app.NewTask{Title: "Title"})

	d, _ := a.BeginEdit(tk.ID)
	d.Title = "  "
	if err := a.SaveEdit(ctx, d); !errors.Is(err, app.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if _, ok := a.CurrentEdit(); !ok {
		t.Error("expected draft kept open after validation failure")
	}
	if a.Tasks()[0].Title != "Title" {
		t.Error("expected no mutation")
	}
}

func TestApp_SingleEditSlot(t *testing.T) {
	a := testutil.NewApp(t, testutil.NewStore(t))
	ctx := context.Background()
	one, _ := a.AddTask(ctx, app.NewTask{Title: "One"})
	two, _ := a.AddTask(ctx, app.NewTask{Title: "Two"})

	d1, _ := a.BeginEdit(one.ID)
	a.BeginEdit(two.ID)

	if err := a.SaveEdit(ctx, d1); !errors.Is(err, app.ErrNotEditing) {
		t.Errorf("expected ErrNotEditing for replaced draft, got %v", err)
	}
	cur, ok := a.CurrentEdit()
	if !ok || cur.ID != two.ID {
		t.Errorf("expected slot to hold second task, got %+v", cur)
	}
}

func TestApp_BeginEditMissing(t *testing.T) {
	a := testutil.NewApp(t, testutil.NewStore(t))
	if _, err := a.BeginEdit("nope"); !errors.Is(err, app.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestApp_RemoveClearsDraftForThatTask(t *testing.T) {
	a := testutil.NewApp(t, testutil.NewStore(t))
	ctx := context.Background()
	tk, _ := a.AddTask(ctx, app.NewTask{Title: "Doomed"})

	a.BeginEdit(tk.ID)
	a.RemoveTask(ctx, tk.ID)

	if _, ok := a.CurrentEdit(); ok {
		t.Error("expected draft discarded with its task")
	}
}
