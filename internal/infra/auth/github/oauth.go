// Package github implements the OAuthProvider contract against the GitHub
// OAuth and REST APIs.
package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"passport/config"
	"passport/internal/domain/entity"
	"passport/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	githubOAuthURL  = "https://github.com/login/oauth/authorize"
	githubTokenURL  = "https://github.com/login/oauth/access_token"
	githubUserURL   = "https://api.github.com/user"
	githubEmailsURL = "https://api.github.com/user/emails"

	requestTimeout = 10 * time.Second
)

// OAuthService handles the GitHub side of the authorization-code flow.
// GitHub does not support PKCE; CSRF protection rests on the state parameter.
type OAuthService struct {
	clientID     string
	clientSecret string
	redirectURI  string

	httpClient *http.Client

	// Endpoint overrides for tests.
	tokenURL  string
	userURL   string
	emailsURL string
}

// NewOAuthService creates a new GitHub OAuth service
func NewOAuthService(config *config.Config) service.OAuthProvider {
	return &OAuthService{
		clientID:     config.OAuth.GitHub.ClientID,
		clientSecret: config.OAuth.GitHub.ClientSecret,
		redirectURI:  config.OAuth.GitHub.RedirectURI,
		httpClient:   &http.Client{Timeout: requestTimeout},
		tokenURL:     githubTokenURL,
		userURL:      githubUserURL,
		emailsURL:    githubEmailsURL,
	}
}

// Provider returns the auth method tag for GitHub.
func (s *OAuthService) Provider() entity.AuthMethod {
	return entity.MethodGitHub
}

// AuthorizationURL constructs the GitHub consent URL. The verifier parameter
// is ignored.
func (s *OAuthService) AuthorizationURL(state, _ string) string {
	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", "read:user user:email")
	params.Set("state", state)

	return githubOAuthURL + "?" + params.Encode()
}

// ExchangeCode exchanges an authorization code for an access token.
func (s *OAuthService) ExchangeCode(ctx context.Context, code, _ string) (string, error) {
	data := url.Values{}
	data.Set("client_id", s.clientID)
	data.Set("client_secret", s.clientSecret)
	data.Set("code", code)
	data.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

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
		Error       string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}
	if tokenResponse.Error != "" {
		// GitHub reports exchange errors with a 200 status.
		return "", errors.Errorf("token exchange rejected: %s", tokenResponse.Error)
	}

	return tokenResponse.AccessToken, nil
}

// FetchProfile retrieves the user's profile and primary email. The /user
// payload omits the email for users who keep it private, so the address
// always comes from the /user/emails listing.
func (s *OAuthService) FetchProfile(ctx context.Context, accessToken string) (*service.OAuthProfile, error) {
	var githubUser struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	}

	if err := s.getJSON(ctx, s.userURL, accessToken, &githubUser); err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}

	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}

	if err := s.getJSON(ctx, s.emailsURL, accessToken, &emails); err != nil {
		return nil, errors.Wrap(err, "failed to list user emails")
	}

	profile := &service.OAuthProfile{
		ProviderUserID: strconv.FormatInt(githubUser.ID, 10),
		Name:           githubUser.Name,
		AvatarURL:      githubUser.AvatarURL,
	}
	if profile.Name == "" {
		profile.Name = githubUser.Login
	}

	for _, e := range emails {
		if e.Primary {
			profile.Email = e.Email
			profile.EmailVerified = e.Verified

			break
		}
	}
	if profile.Email == "" {
		return nil, errors.New("github account has no primary email")
	}

	return profile, nil
}

// getJSON performs an authenticated GET and decodes the JSON response.
func (s *OAuthService) getJSON(ctx context.Context, rawURL, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return errors.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}
