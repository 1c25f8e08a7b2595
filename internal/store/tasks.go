package store

import (
	"errors"
	"fmt"

	"taskpad/internal/model"
)

// ErrDuplicateID is returned when a task id is already present.
var ErrDuplicateID = errors.New("duplicate task id")

// TaskState is a snapshot of the task store.
type TaskState struct {
	Tasks   []model.Task
	Loading bool
	Error   string
}

// TaskStore holds the ordered task list. Order is insertion order and is never sorted here.
type TaskStore struct {
	tasks   []model.Task
	loading bool
	err     string
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// Add appends t. The list is unchanged if t.ID is already present.
func (s *TaskStore) Add(t model.Task) error {
	if s.indexOf(t.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
	}
	s.tasks = append(s.tasks, t.Clone())
	return nil
}

// Remove deletes the task with the given id. Returns false if it was not present.
func (s *TaskStore) Remove(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	return true
}

// ReplaceAll replaces the whole list, keeping the given order.
func (s *TaskStore) ReplaceAll(tasks []model.Task) error {
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	s.tasks = cloneTasks(tasks)
	return nil
}

// Tasks returns a copy of the list in insertion order.
func (s *TaskStore) Tasks() []model.Task {
	return cloneTasks(s.tasks)
}

// Get returns the task with the given id.
func (s *TaskStore) Get(id string) (model.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// BeginLoad marks a load from persistence in flight.
func (s *TaskStore) BeginLoad() {
	s.loading = true
	s.err = ""
}

// Load replaces the list with persisted tasks and ends the load.
func (s *TaskStore) Load(tasks []model.Task) error {
	s.loading = false
	return s.ReplaceAll(tasks)
}

// FailLoad ends the load with an error and an empty list.
func (s *TaskStore) FailLoad(message string) {
	s.tasks = nil
	s.loading = false
	s.err = message
}

// State returns a snapshot of the store.
func (s *TaskStore) State() TaskState {
	return TaskState{Tasks: s.Tasks(), Loading: s.loading, Error: s.err}
}

func (s *TaskStore) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
