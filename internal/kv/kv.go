// Package kv provides the durable string key-value store that backs taskpad state.
package kv

import "context"

// Persisted entry keys.
const (
	KeyUser     = "user"
	KeyTasks    = "tasks"
	KeyDarkMode = "darkMode"
)

// Store is a string-keyed, string-valued durable store.
// Set overwrites; the last writer wins.
type Store interface {
	// Get returns the value for key. ok is false if the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
