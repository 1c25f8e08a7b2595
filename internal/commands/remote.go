package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"taskpad/internal/exitcode"
	"taskpad/internal/service"
)

// openRemote creates the remote backend, printing the error and returning a
// non-zero exit code on failure.
func openRemote(ctx context.Context, env *Env, errOut io.Writer) (service.Service, int) {
	if env.Remote == nil {
		fmt.Fprintln(errOut, "error: no remote backend configured")
		return nil, exitcode.BackendError
	}
	svc, err := env.Remote(ctx, env.Config)
	if err != nil {
		if code := ExitCode(err); code == exitcode.AuthError {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return nil, code
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return nil, exitcode.BackendError
	}
	return svc, exitcode.Success
}

// resolveRemoteList returns the named list, or the default list when name is empty.
func resolveRemoteList(ctx context.Context, svc service.Service, name string, errOut io.Writer) (service.TaskList, int) {
	if name == "" {
		list, err := svc.DefaultList(ctx)
		if err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return service.TaskList{}, exitcode.BackendError
		}
		return list, exitcode.Success
	}

	list, err := svc.ResolveList(ctx, name)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Fprintf(errOut, "error: list not found: %s\n", name)
			return service.TaskList{}, exitcode.UserError
		}
		if strings.Contains(err.Error(), "ambiguous") {
			fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", name)
			return service.TaskList{}, exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return service.TaskList{}, exitcode.BackendError
	}
	return list, exitcode.Success
}
