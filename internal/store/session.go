// Package store holds the in-memory session and task state.
// Stores never touch persistence; the app layer mirrors them after each mutation.
package store

import "taskpad/internal/model"

// SessionState is a snapshot of the session store.
// IsAuthenticated is true if and only if User is non-nil.
type SessionState struct {
	User            *model.User
	IsAuthenticated bool
	Loading         bool
	Error           string
}

// SessionStore holds authentication status and the current user.
type SessionStore struct {
	state SessionState
}

// NewSessionStore creates a signed-out session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// BeginLogin marks a login attempt in flight and clears any previous error.
func (s *SessionStore) BeginLogin() {
	s.state.Loading = true
	s.state.Error = ""
}

// CompleteLogin records a successful login.
func (s *SessionStore) CompleteLogin(u model.User) {
	s.state = SessionState{User: &u, IsAuthenticated: true}
}

// FailLogin records a failed login. The session ends signed out whatever its prior state.
func (s *SessionStore) FailLogin(message string) {
	s.state = SessionState{Error: message}
}

// Logout clears the current user.
func (s *SessionStore) Logout() {
	s.state.User = nil
	s.state.IsAuthenticated = false
}

// State returns a snapshot of the session.
func (s *SessionStore) State() SessionState {
	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}
