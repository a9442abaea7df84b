// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OAuthAccount links an external provider identity to a local user.
// The (Provider, ProviderUserID) pair is unique system-wide: a given external
// account maps to at most one local user. Rows are created once and never
// mutated; they are removed only when the owning user is deleted.
type OAuthAccount struct {
	Provider       AuthMethod // The OAuth provider, e.g. "github" or "google".
	ProviderUserID string     // The user's unique ID at the provider (GitHub numeric id, Google 'sub').
	UserID         uuid.UUID  // The local user this external account belongs to.
	CreatedAt      time.Time  // Timestamp of when the account was first linked.
}
