package app

import (
	"context"
	"fmt"
	"strings"

	"taskpad/internal/store"
)

// BeginEdit puts the task with id into the edit slot and returns its draft.
// Any earlier draft is discarded.
func (a *App) BeginEdit(id string) (store.Draft, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, ok := a.tasks.Get(id)
	if !ok {
		return store.Draft{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return a.editor.Begin(t), nil
}

// CurrentEdit returns the draft in the edit slot, if any.
func (a *App) CurrentEdit() (store.Draft, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.editor.Current()
}

// CancelEdit discards the draft without touching the task list.
func (a *App) CancelEdit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.editor.Cancel()
}

// SaveEdit writes d over its task, replaces the list and persists it.
// d must be for the task in the edit slot. On validation failure the draft stays open.
func (a *App) SaveEdit(ctx context.Context, d store.Draft) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	cur, ok := a.editor.Current()
	if !ok || cur.ID != d.ID {
		return fmt.Errorf("%w: %s", ErrNotEditing, d.ID)
	}

	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return ErrEmptyTitle
	}
	if !d.Priority.Valid() {
		return fmt.Errorf("invalid priority: %s", d.Priority)
	}
	if d.DueDate != nil {
		due := d.DueDate.UTC()
		d.DueDate = &due
	}

	updated, found := d.Apply(a.tasks.Tasks())
	if !found {
		a.editor.Cancel()
		return fmt.Errorf("%w: %s", ErrTaskNotFound, d.ID)
	}
	if err := a.tasks.ReplaceAll(updated); err != nil {
		return err
	}
	a.editor.Cancel()
	return a.persistTasks(ctx)
}
