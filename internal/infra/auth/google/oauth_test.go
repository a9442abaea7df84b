package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"passport/config"
	"passport/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		OAuth: &config.OAuthConfig{
			Google: config.OAuthProviderConfig{
				ClientID:     "test_client_id",
				ClientSecret: "test_secret",
				RedirectURI:  "http://localhost:8080/oauth/google/callback",
			},
		},
	}
}

func TestOAuthService_Provider(t *testing.T) {
	service := NewOAuthService(newTestConfig())

	assert.Equal(t, entity.MethodGoogle, service.Provider())
}

func TestOAuthService_AuthorizationURL(t *testing.T) {
	service := NewOAuthService(newTestConfig())

	raw := service.AuthorizationURL("random-state", "pkce-verifier")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "test_client_id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/oauth/google/callback", query.Get("redirect_uri"))
	assert.Equal(t, "openid profile email", query.Get("scope"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "random-state", query.Get("state"))
	assert.Equal(t, "S256", query.Get("code_challenge_method"))
	// The verifier itself never appears in the URL, only its S256 digest.
	assert.NotEmpty(t, query.Get("code_challenge"))
	assert.NotContains(t, raw, "pkce-verifier")
}

func TestOAuthService_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test_client_id", r.PostForm.Get("client_id"))
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))
		assert.Equal(t, "pkce-verifier", r.PostForm.Get("code_verifier"))
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	defer server.Close()

	service := &OAuthService{
		clientID:     "test_client_id",
		clientSecret: "test_secret",
		redirectURI:  "http://localhost:8080/oauth/google/callback",
		httpClient:   server.Client(),
		tokenURL:     server.URL,
	}

	token, err := service.ExchangeCode(context.Background(), "auth-code", "pkce-verifier")

	require.NoError(t, err)
	assert.Equal(t, "access-token", token)
}

func TestOAuthService_ExchangeCode_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	service := &OAuthService{
		httpClient: server.Client(),
		tokenURL:   server.URL,
	}

	_, err := service.ExchangeCode(context.Background(), "bad-code", "pkce-verifier")

	assert.Error(t, err)
}

func TestOAuthService_FetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sub":            "109748275612345678901",
			"email":          "test@example.com",
			"email_verified": true,
			"name":           "Test User",
			"picture":        "https://lh3.example.com/a/photo",
		})
	}))
	defer server.Close()

	service := &OAuthService{
		httpClient:  server.Client(),
		userInfoURL: server.URL,
	}

	profile, err := service.FetchProfile(context.Background(), "access-token")

	require.NoError(t, err)
	assert.Equal(t, "109748275612345678901", profile.ProviderUserID)
	assert.Equal(t, "test@example.com", profile.Email)
	assert.True(t, profile.EmailVerified)
	assert.Equal(t, "Test User", profile.Name)
	assert.Equal(t, "https://lh3.example.com/a/photo", profile.AvatarURL)
}

func TestCodeChallenge(t *testing.T) {
	// RFC 7636 appendix B test vector.
	verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"

	assert.Equal(t, "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM", codeChallenge(verifier))
}
