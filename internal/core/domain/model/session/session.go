// Package session contains the UserSession entity.
// Sessions are issued by the HTTP layer's cookie middleware; the core only
// reads their identifiers to stamp ownership on parcels.
package session

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

// ErrUserSessionIsNotConstructed is returned when a UserSession instance was
// not created through NewUserSession or RestoreUserSession.
var ErrUserSessionIsNotConstructed = errors.New(
	"UserSession must be created via NewUserSession or RestoreUserSession",
)

// UserSession identifies an anonymous client by an opaque token carried in a
// cookie. Parcels reference the session that registered them.
type UserSession struct {
	id           kernel.UUID
	token        string
	createdAt    time.Time
	lastActivity time.Time

	isConstructed bool
}

// NewUserSession creates a fresh session with both timestamps set to now.
func NewUserSession(id kernel.UUID, token string) (*UserSession, error) {
	now := time.Now().UTC()
	return RestoreUserSession(id, token, now, now)
}

// RestoreUserSession reconstructs a session from persistence.
func RestoreUserSession(id kernel.UUID, token string, createdAt, lastActivity time.Time) (*UserSession, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}

	return &UserSession{
		id:            id,
		token:         token,
		createdAt:     createdAt,
		lastActivity:  lastActivity,
		isConstructed: true,
	}, nil
}

// Validate ensures the UserSession was created through a constructor.
func (s *UserSession) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrUserSessionIsNotConstructed
	}
	return nil
}

// ID returns the session's unique identifier.
func (s *UserSession) ID() kernel.UUID {
	return s.id
}

// Token returns the opaque session token.
func (s *UserSession) Token() string {
	return s.token
}

// CreatedAt returns when the session was issued.
func (s *UserSession) CreatedAt() time.Time {
	return s.createdAt
}

// LastActivity returns the time of the last request seen for this session.
func (s *UserSession) LastActivity() time.Time {
	return s.lastActivity
}

// Touch refreshes the last-activity timestamp.
func (s *UserSession) Touch(now time.Time) {
	s.lastActivity = now
}
