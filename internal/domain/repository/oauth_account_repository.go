// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for OAuth account persistence.
var (
	// ErrOAuthAccountNotFound is returned when no account exists for a provider pair.
	ErrOAuthAccountNotFound = errors.New("oauth account not found")
	// ErrDuplicateOAuthAccount is returned when an insert violates the unique
	// constraint on (provider, provider_user_id).
	ErrDuplicateOAuthAccount = errors.New("oauth account already linked")
)

// OAuthAccountRepository defines the operations for external provider account links.
type OAuthAccountRepository interface {
	// Find retrieves the account link for a (provider, providerUserID) pair.
	Find(ctx context.Context, provider entity.AuthMethod, providerUserID string) (*entity.OAuthAccount, error)

	// Create persists a new account link. Returns ErrDuplicateOAuthAccount when
	// the composite unique constraint is violated.
	Create(ctx context.Context, account *entity.OAuthAccount) error

	// ListByUserID returns all provider links for a user.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OAuthAccount, error)
}
