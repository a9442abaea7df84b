// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionCookie tells the delivery layer what to do with the session cookie.
// The session components never touch transport; every state change is
// reported back as a cookie directive instead.
type SessionCookie struct {
	Value     string    // The session token; empty when clearing.
	ExpiresAt time.Time // Cookie expiry, aligned with the session row.
	Clear     bool      // When true the cookie must be removed (blank value, immediate expiry).
}

// SessionOutput is the result of minting a new session.
type SessionOutput struct {
	Session *entity.Session
	Cookie  *SessionCookie
}

// ValidateSessionOutput is the result of validating a bearer token.
// User and Session are nil for absent or expired sessions. Cookie is non-nil
// whenever the caller must touch the cookie: re-issue after an extension, or
// clear after a failed validation.
type ValidateSessionOutput struct {
	User    *entity.User
	Session *entity.Session
	Cookie  *SessionCookie
}

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// Create mints a session for a user and returns the cookie to issue.
	Create(ctx context.Context, userID uuid.UUID) (*SessionOutput, error)

	// Validate resolves a bearer token to its user, lazily expiring and
	// extending sessions inside the freshness window.
	Validate(ctx context.Context, sessionID string) (*ValidateSessionOutput, error)

	// Invalidate deletes a session; idempotent if already gone.
	Invalidate(ctx context.Context, sessionID string) error

	// InvalidateAll deletes every session a user holds.
	InvalidateAll(ctx context.Context, userID uuid.UUID) error

	// CleanupExpired sweeps expired session rows. Optional; expiry is already
	// evaluated lazily at read time.
	CleanupExpired(ctx context.Context) (int, error)
}
