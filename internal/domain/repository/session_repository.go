// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session is not found.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the operations for session persistence.
// A user may hold many concurrent sessions, one per active browser login.
type SessionRepository interface {
	// Create persists a new session row.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its token. Expiry is evaluated by the
	// caller, not the repository; expired rows are still returned.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// UpdateExpiry extends an existing session to a new absolute expiry.
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error

	// Delete removes a session by its token. Deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteByUserID removes all sessions for a user ("logout everywhere").
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes all sessions past the given instant and reports how many.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
