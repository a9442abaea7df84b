package usecase

import (
	"context"

	"github.com/google/uuid"
)

// VerificationUsecase defines the interface for one-time email verification
// codes.
type VerificationUsecase interface {
	// Generate replaces any outstanding code for the user with a fresh one.
	// Generation and replacement happen in one transaction, so at most one
	// live code exists per user at any time.
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// Send delivers a code to the given address.
	Send(ctx context.Context, email string, code string) error

	// Verify consumes the user's outstanding code. On success the code is
	// deleted and the user's email is marked verified. Checks run in a fixed
	// order so callers can distinguish a consumed code from a wrong guess.
	Verify(ctx context.Context, userID uuid.UUID, code string) error
}
