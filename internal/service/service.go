package service

import "context"

// Service defines the remote backend operations used by push.
// Commands never import the Google SDK directly.
type Service interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ListLists returns all task lists in API order.
	ListLists(ctx context.Context) ([]TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns error if not found or ambiguous.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// ListOpenTasks returns every open task in a list, in API order.
	ListOpenTasks(ctx context.Context, listID string) ([]Task, error)

	// CreateTask creates a task in the specified list.
	CreateTask(ctx context.Context, listID string, task Task) error
}
