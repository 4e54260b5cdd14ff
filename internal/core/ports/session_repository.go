package ports

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for user sessions.
// Sessions are created by the HTTP cookie middleware and looked up by the
// consumer when stamping ownership on parcels.
type SessionRepository interface {
	// Add persists a freshly issued session.
	Add(ctx context.Context, aggregate *session.UserSession) error

	// Get retrieves a session by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*session.UserSession, error)

	// GetByToken retrieves a session by its opaque cookie token.
	GetByToken(ctx context.Context, token string) (*session.UserSession, error)

	// Touch refreshes the session's last-activity timestamp.
	Touch(ctx context.Context, id kernel.UUID, at time.Time) error
}
