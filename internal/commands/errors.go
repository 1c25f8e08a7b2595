package commands

import (
	"errors"
	"fmt"
	"io"

	"taskpad/internal/app"
	"taskpad/internal/auth"
	"taskpad/internal/backend/googletasks"
	"taskpad/internal/exitcode"
)

// ErrNotLoggedIn is reported when a command needs a signed-in user.
var ErrNotLoggedIn = errors.New("not logged in (run: taskpad login)")

// ExitCode maps an error returned by the App or the remote backend to an exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, app.ErrPersist):
		return exitcode.StorageError
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, ErrNotLoggedIn),
		errors.Is(err, googletasks.ErrNoOAuthClient),
		errors.Is(err, googletasks.ErrNotConnected):
		return exitcode.AuthError
	default:
		return exitcode.UserError
	}
}

// fail prints err and returns its exit code.
func fail(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	return ExitCode(err)
}

// done prints msg unless quiet and returns success.
func done(env *Env, out io.Writer, msg string) int {
	if !env.Config.Quiet {
		fmt.Fprintln(out, msg)
	}
	return exitcode.Success
}
