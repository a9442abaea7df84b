// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// A user may carry several auth methods (email/password plus linked OAuth accounts)
// but there is exactly one User row per email address.
type User struct {
	ID              uuid.UUID   // The Global Unique Identifier (GUID) for the user.
	Email           string      // The user's email, unique across the system, stored case-sensitively.
	Name            string      // The user's display name.
	AvatarURL       string      // Optional profile picture URL, populated from OAuth profiles.
	PasswordHash    string      // bcrypt hash of the password; empty for OAuth-only accounts.
	IsEmailVerified bool        // Whether the user has proven control of their email address.
	AuthMethods     AuthMethods // The credential mechanisms linked to this account.
	CreatedAt       time.Time   // Timestamp of when this user account was created.
	UpdatedAt       time.Time   // Timestamp of the last modification to this user's data.
}

// HasPassword reports whether the account can authenticate with a password.
// Invariant: AuthMethods containing "email" implies a non-empty hash.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// Verify marks the email address as confirmed and records the email method.
// Verification is terminal; calling Verify on a verified user only ensures
// the "email" tag is present.
func (u *User) Verify() {
	u.IsEmailVerified = true
	u.AuthMethods = u.AuthMethods.Add(MethodEmail)
}
