// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, not found, validation).
	UserError = 1

	// AuthError indicates a login, session or OAuth error.
	AuthError = 2

	// BackendError indicates a Google Tasks API/network error.
	BackendError = 3

	// StorageError indicates the local state store failed.
	StorageError = 4
)
