package store

import (
	"time"

	"taskpad/internal/model"
)

// Draft is an unsaved copy of one task's editable fields.
type Draft struct {
	ID       string
	Title    string
	Priority model.Priority
	DueDate  *time.Time
}

// Editor is the single "currently editing" slot.
type Editor struct {
	draft *Draft
}

// Begin starts editing t, replacing any earlier draft.
func (e *Editor) Begin(t model.Task) Draft {
	d := Draft{ID: t.ID, Title: t.Title, Priority: t.Priority}
	if t.DueDate != nil {
		due := *t.DueDate
		d.DueDate = &due
	}
	e.draft = &d
	return d
}

// Current returns the draft being edited, if any.
func (e *Editor) Current() (Draft, bool) {
	if e.draft == nil {
		return Draft{}, false
	}
	return *e.draft, true
}

// Cancel discards the draft.
func (e *Editor) Cancel() {
	e.draft = nil
}

// Apply returns a copy of tasks with d's title, priority and due date written over
// the matching entry. ID and CreatedAt are carried over. The second result is false
// if no task matches d.ID.
func (d Draft) Apply(tasks []model.Task) ([]model.Task, bool) {
	out := cloneTasks(tasks)
	found := false
	for i := range out {
		if out[i].ID != d.ID {
			continue
		}
		out[i].Title = d.Title
		out[i].Priority = d.Priority
		out[i].DueDate = nil
		if d.DueDate != nil {
			due := *d.DueDate
			out[i].DueDate = &due
		}
		found = true
	}
	return out, found
}
