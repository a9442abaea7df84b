// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailVerificationCode is a short-lived, single-use numeric credential
// proving control of an email address. At most one live code exists per user;
// issuing a new one supersedes (deletes) any prior code in the same transaction.
type EmailVerificationCode struct {
	UserID    uuid.UUID // The user the code was issued to.
	Email     string    // The address the code was sent to, captured at issue time.
	Code      string    // Fixed-length numeric code from a cryptographically secure source.
	ExpiresAt time.Time // Issue time + the configured TTL (5 minutes).
	CreatedAt time.Time // Timestamp of when the code was issued.
}

// Expired reports whether the code is past its TTL at the given instant.
func (c *EmailVerificationCode) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}
