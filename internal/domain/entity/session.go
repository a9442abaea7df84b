// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a single authenticated browser login. The ID doubles as
// the bearer credential transported in the session cookie, so it must come
// from a cryptographically secure source.
type Session struct {
	ID        string    // Unguessable session token; primary key and bearer credential.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	ExpiresAt time.Time // Absolute expiry; sessions past this point are treated as absent.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}

// Expired reports whether the session is past its absolute expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Fresh reports whether the session's remaining lifetime has fallen inside the
// freshness window and should be extended back to the full lifetime.
func (s *Session) Fresh(now time.Time, freshness time.Duration) bool {
	return s.ExpiresAt.Sub(now) < freshness
}
