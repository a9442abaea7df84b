// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCodeNotFound is returned when no verification code exists for a user.
var ErrCodeNotFound = errors.New("verification code not found")

// VerificationCodeRepository defines the operations for email verification code persistence.
type VerificationCodeRepository interface {
	// FindByUserID retrieves the live code for a user. There is at most one.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.EmailVerificationCode, error)

	// Create persists a new code row.
	Create(ctx context.Context, code *entity.EmailVerificationCode) error

	// DeleteByUserID removes any code rows for a user. Deleting when none exist is not an error.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
