package service

import (
	"context"

	"passport/internal/domain/entity"
)

// OAuthProfile represents user information fetched from an OAuth provider.
type OAuthProfile struct {
	ProviderUserID string // The user's unique ID at the provider (GitHub numeric id, Google 'sub').
	Email          string // The user's primary email address.
	EmailVerified  bool   // Whether the provider has confirmed the email address.
	Name           string // The user's display name.
	AvatarURL      string // URL to the user's profile picture.
}

// OAuthProvider is the per-provider collaborator for the authorization-code flow.
// State and verifier cookies are handled by the delivery layer; the provider
// only talks to the external token and profile endpoints.
type OAuthProvider interface {
	// Provider returns the method tag this provider authenticates ("github", "google").
	Provider() entity.AuthMethod

	// AuthorizationURL builds the provider's consent URL. verifier is the PKCE
	// code verifier; providers that do not support PKCE ignore it.
	AuthorizationURL(state, verifier string) string

	// ExchangeCode trades an authorization code for an access token.
	ExchangeCode(ctx context.Context, code, verifier string) (string, error)

	// FetchProfile retrieves the authenticated user's profile with an access token.
	FetchProfile(ctx context.Context, accessToken string) (*OAuthProfile, error)
}
