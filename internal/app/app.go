// Package app owns the session and task stores and mirrors every mutation
// into the durable key-value store.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskpad/internal/auth"
	"taskpad/internal/kv"
	"taskpad/internal/model"
	"taskpad/internal/store"
)

var (
	// ErrEmptyTitle is returned when a task title is blank.
	ErrEmptyTitle = errors.New("title required")

	// ErrTaskNotFound is returned when no task has the requested id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNotEditing is returned when saving a draft that is not in the edit slot.
	ErrNotEditing = errors.New("task is not being edited")

	// ErrPersist wraps failures of the durable store.
	ErrPersist = errors.New("storage error")
)

// MalformedTasksMessage is the task-store error set when persisted tasks cannot be decoded.
const MalformedTasksMessage = "malformed persisted tasks"

// App is the process-wide state context.
// Its methods are safe for concurrent use; calls are serialized.
type App struct {
	mu       sync.Mutex
	kv       kv.Store
	auth     auth.Authenticator
	log      *slog.Logger
	now      func() time.Time
	newID    func() string
	session  *store.SessionStore
	tasks    *store.TaskStore
	editor   store.Editor
	darkMode bool
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithIDGenerator sets the task id generator.
func WithIDGenerator(fn func() string) Option {
	return func(a *App) { a.newID = fn }
}

// New creates an App over the given store and identity provider.
// Call Hydrate before use to restore persisted state.
func New(db kv.Store, authenticator auth.Authenticator, opts ...Option) *App {
	a := &App{
		kv:      db,
		auth:    authenticator,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
		session: store.NewSessionStore(),
		tasks:   store.NewTaskStore(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Close releases the durable store.
func (a *App) Close() error {
	return a.kv.Close()
}

// Hydrate restores the user, tasks and theme from the durable store.
// Malformed entries are logged and treated as absent.
func (a *App) Hydrate(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	raw, ok, err := a.kv.Get(ctx, kv.KeyUser)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if ok {
		if u, err := decodeUser(raw); err != nil {
			a.log.Warn("ignoring malformed persisted entry", "key", kv.KeyUser, "err", err)
		} else {
			a.session.CompleteLogin(u)
		}
	}

	a.tasks.BeginLoad()
	raw, ok, err = a.kv.Get(ctx, kv.KeyTasks)
	if err != nil {
		a.tasks.FailLoad(err.Error())
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	switch {
	case !ok:
		a.tasks.Load(nil)
	default:
		tasks, err := decodeTasks(raw)
		if err != nil {
			a.log.Warn("ignoring malformed persisted entry", "key", kv.KeyTasks, "err", err)
			a.tasks.FailLoad(MalformedTasksMessage)
		} else if err := a.tasks.Load(tasks); err != nil {
			a.log.Warn("ignoring malformed persisted entry", "key", kv.KeyTasks, "err", err)
			a.tasks.FailLoad(MalformedTasksMessage)
		}
	}

	raw, ok, err = a.kv.Get(ctx, kv.KeyDarkMode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	a.darkMode = ok && raw == "true"

	a.log.Debug("hydrated state",
		"authenticated", a.session.State().IsAuthenticated,
		"tasks", a.tasks.Len(),
		"darkMode", a.darkMode)
	return nil
}

// Session returns a snapshot of the session state.
func (a *App) Session() store.SessionState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.State()
}

// TaskState returns a snapshot of the task collection state.
func (a *App) TaskState() store.TaskState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tasks.State()
}

// Tasks returns the tasks in insertion order.
func (a *App) Tasks() []model.Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tasks.Tasks()
}

// Login checks the credentials and, on success, signs the user in and persists them.
// On failure the session records the error and stays signed out.
func (a *App) Login(ctx context.Context, email, password string) (model.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// A new attempt replaces whoever was signed in, so a failure leaves no one.
	if a.session.State().IsAuthenticated {
		a.session.Logout()
		a.editor.Cancel()
		if err := a.kv.Delete(ctx, kv.KeyUser); err != nil {
			return model.User{}, fmt.Errorf("%w: %w", ErrPersist, err)
		}
	}

	a.session.BeginLogin()
	a.log.Debug("login attempt", "email", email)

	u, err := a.auth.Authenticate(ctx, email, password)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, auth.ErrInvalidCredentials) {
			msg = auth.ErrInvalidCredentials.Error()
		}
		a.session.FailLogin(msg)
		return model.User{}, err
	}

	a.session.CompleteLogin(u)
	data, err := json.Marshal(u)
	if err != nil {
		return u, fmt.Errorf("failed to encode user: %w", err)
	}
	if err := a.write(ctx, kv.KeyUser, string(data)); err != nil {
		return u, err
	}
	return u, nil
}

// Logout signs out and removes the persisted user. Returns false if no one was signed in.
func (a *App) Logout(ctx context.Context) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	wasSignedIn := a.session.State().IsAuthenticated
	a.session.Logout()
	a.editor.Cancel()
	if err := a.kv.Delete(ctx, kv.KeyUser); err != nil {
		return wasSignedIn, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return wasSignedIn, nil
}

// NewTask holds the fields a caller supplies when creating a task.
type NewTask struct {
	Title    string
	Priority model.Priority
	DueDate  *time.Time
}

// AddTask validates and appends a new task, then persists the list.
func (a *App) AddTask(ctx context.Context, in NewTask) (model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Task{}, ErrEmptyTitle
	}
	priority := in.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return model.Task{}, fmt.Errorf("invalid priority: %s", priority)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	t := model.Task{
		ID:        a.newID(),
		Title:     title,
		Priority:  priority,
		CreatedAt: a.now().UTC(),
	}
	if in.DueDate != nil {
		due := in.DueDate.UTC()
		t.DueDate = &due
	}

	if err := a.tasks.Add(t); err != nil {
		return model.Task{}, err
	}
	return t, a.persistTasks(ctx)
}

// RemoveTask deletes the task with id and persists the list.
// Removing an absent id is a no-op that reports false.
func (a *App) RemoveTask(ctx context.Context, id string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.tasks.Remove(id) {
		return false, nil
	}
	if d, ok := a.editor.Current(); ok && d.ID == id {
		a.editor.Cancel()
	}
	return true, a.persistTasks(ctx)
}

// DarkMode reports the persisted theme preference.
func (a *App) DarkMode() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.darkMode
}

// SetDarkMode stores the theme preference.
func (a *App) SetDarkMode(ctx context.Context, dark bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.setDarkMode(ctx, dark)
}

// ToggleDarkMode flips the theme preference and returns the new value.
func (a *App) ToggleDarkMode(ctx context.Context) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	dark := !a.darkMode
	return dark, a.setDarkMode(ctx, dark)
}

func (a *App) setDarkMode(ctx context.Context, dark bool) error {
	a.darkMode = dark
	value := "false"
	if dark {
		value = "true"
	}
	return a.write(ctx, kv.KeyDarkMode, value)
}

// decodeUser parses a persisted user. JSON that decodes but names no one is rejected.
func decodeUser(raw string) (model.User, error) {
	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return model.User{}, err
	}
	if err := u.Validate(); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// decodeTasks parses a persisted task list. Every task must pass Validate.
func decodeTasks(raw string) ([]model.Task, error) {
	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		return nil, errors.New("expected a task array")
	}
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

func (a *App) persistTasks(ctx context.Context) error {
	data, err := json.Marshal(a.tasks.Tasks())
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	return a.write(ctx, kv.KeyTasks, string(data))
}

func (a *App) write(ctx context.Context, key, value string) error {
	if err := a.kv.Set(ctx, key, value); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	a.log.Debug("persisted entry", "key", key, "bytes", len(value))
	return nil
}
