// Package sessionrepo provides data transfer objects and mapping functions for
// user session persistence.
package sessionrepo

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting user sessions.
// The token is unique: the cookie middleware resolves sessions by token on
// every request.
type SessionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token        string    `gorm:"uniqueIndex;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	LastActivity time.Time `gorm:"not null"`
}

// TableName specifies the database table name for session entities.
func (SessionDTO) TableName() string {
	return "user_sessions"
}

func fromDomain(aggregate *session.UserSession) SessionDTO {
	return SessionDTO{
		ID:           aggregate.ID().Bytes(),
		Token:        aggregate.Token(),
		CreatedAt:    aggregate.CreatedAt(),
		LastActivity: aggregate.LastActivity(),
	}
}

func toDomain(dto SessionDTO) (*session.UserSession, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return session.RestoreUserSession(id, dto.Token, dto.CreatedAt, dto.LastActivity)
}
