// Package service defines the remote task backend that local tasks are exported to.
package service

import "time"

// Task is a task as stored by the remote backend.
type Task struct {
	ID     string
	Title  string
	Notes  string
	Due    *time.Time
	Status string // "needsAction" or "completed"
}

// TaskList represents a remote task list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}
