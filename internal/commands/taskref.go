package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"taskpad/internal/app"
	"taskpad/internal/model"
)

// MinIDPrefix is the shortest id prefix accepted as a task reference.
const MinIDPrefix = 4

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ResolveTaskRef finds the task named by args in tasks.
//
// Resolution rules:
//  1. All digits: a 1-based position in the list as printed by `taskpad list`
//  2. An exact task id
//  3. A unique id prefix of at least MinIDPrefix characters
//
// Anything else is an invalid reference.
func ResolveTaskRef(tasks []model.Task, args []string) (model.Task, error) {
	if len(args) == 0 {
		return model.Task{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return model.Task{}, fmt.Errorf("invalid task reference: %s", strings.Join(args, " "))
	}

	ref := strings.TrimSpace(args[0])
	if ref == "" {
		return model.Task{}, ErrTaskRefRequired
	}

	if isAllDigits(ref) {
		num, err := strconv.Atoi(ref)
		if err != nil {
			return model.Task{}, fmt.Errorf("invalid task reference: %s", ref)
		}
		if num < 1 || num > len(tasks) {
			return model.Task{}, fmt.Errorf("task number out of range: %d", num)
		}
		return tasks[num-1], nil
	}

	for _, t := range tasks {
		if t.ID == ref {
			return t, nil
		}
	}

	if len(ref) < MinIDPrefix {
		return model.Task{}, fmt.Errorf("invalid task reference: %s", ref)
	}

	var matches []model.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return model.Task{}, fmt.Errorf("%w: %s", app.ErrTaskNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return model.Task{}, fmt.Errorf("ambiguous task id: %s", ref)
	}
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
