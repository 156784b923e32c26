// Package auth is the mock sign-in used by the demo storefront. Credentials
// are checked locally after a simulated network pause; sessions live in
// memory for the life of the process.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("auth: invalid credentials")

type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

var demoUser = User{
	ID:     "1",
	Email:  "demo@example.com",
	Name:   "John Doe",
	Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&q=80",
}

type Service struct {
	delay time.Duration

	mu       sync.Mutex
	sessions map[string]User
}

func NewService(delay time.Duration) *Service {
	return &Service{
		delay:    delay,
		sessions: make(map[string]User),
	}
}

// Login validates the credentials after the simulated delay. The seeded demo
// account wins outright; otherwise any address containing "@" with a
// password of at least six characters is accepted and a user is derived from
// the address. Returns the session token alongside the user.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	if err := s.pause(ctx); err != nil {
		return User{}, "", err
	}

	if email == demoUser.Email && password == "password" {
		return s.startSession(demoUser)
	}

	if strings.Contains(email, "@") && len(password) >= 6 {
		u := User{
			ID:    "2",
			Email: email,
			Name:  strings.SplitN(email, "@", 2)[0],
		}
		return s.startSession(u)
	}

	return User{}, "", ErrInvalidCredentials
}

// Register accepts any non-empty name with a plausible email and a password
// of at least six characters. No account is stored beyond the session.
func (s *Service) Register(ctx context.Context, name, email, password string) (User, string, error) {
	if err := s.pause(ctx); err != nil {
		return User{}, "", err
	}

	if name == "" || !strings.Contains(email, "@") || len(password) < 6 {
		return User{}, "", ErrInvalidCredentials
	}

	u := User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}
	return s.startSession(u)
}

// UserFromToken resolves an active session.
func (s *Service) UserFromToken(token string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.sessions[token]
	return u, ok
}

// Logout drops the session. Unknown tokens are a no-op.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *Service) startSession(u User) (User, string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = u
	s.mu.Unlock()
	return u, token, nil
}

func (s *Service) pause(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
