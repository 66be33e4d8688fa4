package entity

import (
	"errors"
	"time"
)

var (
	ErrSessionExpired  = errors.New("session expired or invalid login")
	ErrSessionNotFound = errors.New("session not found")
)

// Session is the explicit session context handed to every page controller.
// It replaces ad hoc reads of a global key-value store.
type Session struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Token     string    `json:"token,omitempty"`
	Flash     string    `json:"flash,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ended bool
}

func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Role:      RoleNone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetRole returns the role, false when no role has been chosen yet.
func (s *Session) GetRole() (Role, bool) {
	return s.Role, s.Role != RoleNone
}

func (s *Session) GetToken() (string, bool) {
	return s.Token, s.Token != ""
}

func (s *Session) SetSession(role Role, token string) {
	s.Role = role
	s.Token = token
	s.UpdatedAt = time.Now()
}

// Clear drops role and token. The session id survives so the cookie stays valid.
func (s *Session) Clear() {
	s.SetSession(RoleNone, "")
}

// End clears the session and marks it for removal from the store.
func (s *Session) End() {
	s.Clear()
	s.Flash = ""
	s.ended = true
}

// Ended reports whether End was called during this request. It is not persisted.
func (s *Session) Ended() bool {
	return s.ended
}

// Validate enforces that an authenticated role always carries a token.
func (s *Session) Validate() error {
	if s.Role.Authenticated() && s.Token == "" {
		return ErrSessionExpired
	}
	return nil
}

// TakeFlash returns and clears the one-shot message shown on the next render.
func (s *Session) TakeFlash() string {
	msg := s.Flash
	s.Flash = ""
	return msg
}
