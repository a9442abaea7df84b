// Package google implements the OAuthProvider contract against Google's
// OAuth 2.0 and OpenID Connect endpoints.
package google

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"passport/config"
	"passport/internal/domain/entity"
	"passport/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	googleOAuthURL    = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

	requestTimeout = 10 * time.Second
)

// OAuthService handles the Google side of the authorization-code flow.
// Google requires PKCE alongside the client secret.
type OAuthService struct {
	clientID     string
	clientSecret string
	redirectURI  string

	httpClient *http.Client

	// Endpoint overrides for tests.
	tokenURL    string
	userInfoURL string
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(config *config.Config) service.OAuthProvider {
	return &OAuthService{
		clientID:     config.OAuth.Google.ClientID,
		clientSecret: config.OAuth.Google.ClientSecret,
		redirectURI:  config.OAuth.Google.RedirectURI,
		httpClient:   &http.Client{Timeout: requestTimeout},
		tokenURL:     googleTokenURL,
		userInfoURL:  googleUserInfoURL,
	}
}

// Provider returns the auth method tag for Google.
func (s *OAuthService) Provider() entity.AuthMethod {
	return entity.MethodGoogle
}

// codeChallenge derives the S256 PKCE challenge from a verifier.
func codeChallenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))

	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// AuthorizationURL constructs the Google consent URL. The state and verifier
// are minted and persisted by the caller; only their derived parameters go on
// the wire.
func (s *OAuthService) AuthorizationURL(state, verifier string) string {
	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", "openid profile email")
	params.Set("response_type", "code")
	params.Set("state", state)
	params.Set("code_challenge", codeChallenge(verifier))
	params.Set("code_challenge_method", "S256")

	return googleOAuthURL + "?" + params.Encode()
}

// ExchangeCode exchanges an authorization code for an access token.
func (s *OAuthService) ExchangeCode(ctx context.Context, code, verifier string) (string, error) {
	data := url.Values{}
	data.Set("client_id", s.clientID)
	data.Set("client_secret", s.clientSecret)
	data.Set("code", code)
	data.Set("code_verifier", verifier)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return "", errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}

	return tokenResponse.AccessToken, nil
}

// FetchProfile retrieves the user's OpenID Connect profile.
func (s *OAuthService) FetchProfile(ctx context.Context, accessToken string) (*service.OAuthProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	return &service.OAuthProfile{
		ProviderUserID: googleUser.Sub,
		Email:          googleUser.Email,
		EmailVerified:  googleUser.EmailVerified,
		Name:           googleUser.Name,
		AvatarURL:      googleUser.Picture,
	}, nil
}
