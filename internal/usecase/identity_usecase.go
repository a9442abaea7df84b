package usecase

import (
	"context"

	"passport/internal/domain/entity"
	"passport/internal/domain/service"

	"github.com/google/uuid"
)

// PasswordSignupInput carries a credential pair for local account creation.
// Password is already hashed by the caller; this layer never sees plaintext.
type PasswordSignupInput struct {
	Email        string
	Name         string
	PasswordHash string
}

// PasswordSignupOutput reports the account a signup resolved to.
type PasswordSignupOutput struct {
	User  *entity.User
	IsNew bool
}

// OAuthSignInInput carries a verified upstream profile for account resolution.
type OAuthSignInInput struct {
	Provider entity.AuthMethod
	Profile  *service.OAuthProfile
}

// IdentityUsecase resolves external credentials to local user accounts,
// creating or linking accounts as needed.
type IdentityUsecase interface {
	// FindOrCreateForPasswordSignup creates a local account for the email,
	// or rejects when the address is already registered.
	FindOrCreateForPasswordSignup(ctx context.Context, input *PasswordSignupInput) (*PasswordSignupOutput, error)

	// FindOrCreateForOAuth resolves a provider identity to a user ID,
	// linking to an existing account with the same email or creating a new
	// one. Upstream emails must be verified by the provider.
	FindOrCreateForOAuth(ctx context.Context, input *OAuthSignInInput) (uuid.UUID, error)
}
