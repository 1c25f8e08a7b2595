// Package model defines the task and user records shared by the stores.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Priority is a task priority level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority parses a priority name (case-insensitive, trimmed).
// An empty string yields PriorityMedium.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PriorityMedium, nil
	case "high", "h":
		return PriorityHigh, nil
	case "medium", "med", "m":
		return PriorityMedium, nil
	case "low", "l":
		return PriorityLow, nil
	}
	return "", fmt.Errorf("invalid priority: %s", s)
}

// Valid reports whether p is one of the known levels.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Task is one to-do item.
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Priority  Priority   `json:"priority"`
	CreatedAt time.Time  `json:"createdAt"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
}

// Clone returns a copy that shares no memory with t.
func (t Task) Clone() Task {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	return t
}

// Validate reports the first field that a stored task is missing or has wrong.
func (t Task) Validate() error {
	switch {
	case t.ID == "":
		return errors.New("task has no id")
	case strings.TrimSpace(t.Title) == "":
		return fmt.Errorf("task %s has no title", t.ID)
	case !t.Priority.Valid():
		return fmt.Errorf("task %s: invalid priority: %q", t.ID, t.Priority)
	case t.CreatedAt.IsZero():
		return fmt.Errorf("task %s has no createdAt", t.ID)
	}
	return nil
}

// ParseDueDate parses a due date given as YYYY-MM-DD (midnight UTC) or RFC 3339.
func ParseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid due date: %s", s)
}
