package usecase

import (
	"context"

	"passport/internal/domain/entity"
	"passport/internal/ratelimit"
)

// AuthStatus is the outcome class of an authentication attempt. Failures are
// reported as errors, not statuses.
type AuthStatus string

const (
	// StatusAuthenticated means the caller holds a valid session and the
	// account needs no further steps.
	StatusAuthenticated AuthStatus = "authenticated"

	// StatusNeedsVerification means the caller holds a valid session but the
	// account email is not verified yet. The boundary layer decides where to
	// send them.
	StatusNeedsVerification AuthStatus = "needs_verification"
)

// AuthResult is the explicit outcome of a signup, login, or OAuth callback.
type AuthResult struct {
	Status AuthStatus
	User   *entity.User
	Cookie *SessionCookie
}

// SignUpInput carries a password signup request.
type SignUpInput struct {
	Email    string `validate:"required,email"`
	Name     string `validate:"required,min=1,max=64"`
	Password string `validate:"required,min=8,max=128"`
	Limit    ratelimit.Request
}

// LogInInput carries a password login request.
type LogInInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Limit    ratelimit.Request
}

// VerifyEmailInput carries a verification code submission for the session
// user.
type VerifyEmailInput struct {
	SessionID string
	Code      string `validate:"required,len=6,numeric"`
	Limit     ratelimit.Request
}

// ResendCodeInput asks for a fresh verification code for the session user.
type ResendCodeInput struct {
	SessionID string
	Limit     ratelimit.Request
}

// OAuthCallbackInput carries the authorization code returned by a provider.
type OAuthCallbackInput struct {
	Provider     entity.AuthMethod
	Code         string
	CodeVerifier string // PKCE verifier; empty for providers that skip PKCE.
	Limit        ratelimit.Request
}

// AuthUsecase orchestrates the authentication flows. Every operation checks
// its rate limits before any credential or account work.
type AuthUsecase interface {
	// SignUp registers a local account, mints a session, and dispatches a
	// verification code.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthResult, error)

	// LogIn authenticates a password credential and mints a session. Unknown
	// email and wrong password are indistinguishable to the caller.
	LogIn(ctx context.Context, input *LogInInput) (*AuthResult, error)

	// LogOut invalidates the session and returns the clearing cookie
	// directive. Safe to call with a stale or unknown token.
	LogOut(ctx context.Context, sessionID string) (*SessionCookie, error)

	// VerifyEmail consumes the session user's outstanding code.
	VerifyEmail(ctx context.Context, input *VerifyEmailInput) (*entity.User, error)

	// ResendVerificationCode replaces and re-sends the session user's code.
	ResendVerificationCode(ctx context.Context, input *ResendCodeInput) error

	// OAuthCallback exchanges an authorization code, resolves the upstream
	// identity to a local account, and mints a session.
	OAuthCallback(ctx context.Context, input *OAuthCallbackInput) (*AuthResult, error)
}
