// Package auth defines the identity provider used by login.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskpad/internal/model"
)

// DefaultDelay is the artificial latency of MockProvider.
const DefaultDelay = time.Second

// ErrInvalidCredentials is returned when a credential field is empty.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator exchanges credentials for a user.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (model.User, error)
}

// MockProvider stands in for a real identity provider.
//
// Contract: if either field is empty it fails immediately with ErrInvalidCredentials.
// Otherwise it waits Delay and succeeds with a user named after the email's local-part.
// The wait ends early only if ctx is cancelled.
type MockProvider struct {
	Delay time.Duration
}

// NewMockProvider returns a MockProvider with DefaultDelay.
func NewMockProvider() *MockProvider {
	return &MockProvider{Delay: DefaultDelay}
}

// Authenticate implements Authenticator.
func (p *MockProvider) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	if email == "" || password == "" {
		return model.User{}, ErrInvalidCredentials
	}

	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return model.User{}, ctx.Err()
		}
	}

	return model.User{
		ID:    uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String(),
		Email: email,
		Name:  LocalPart(email),
	}, nil
}

// LocalPart returns the part of email before the first "@".
// An address without "@" is returned unchanged.
func LocalPart(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
