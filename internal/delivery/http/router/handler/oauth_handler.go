package handler

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/http"

	"passport/config"
	"passport/internal/delivery/http/cookie"
	"passport/internal/delivery/http/response"
	"passport/internal/domain/entity"
	"passport/internal/domain/service"
	"passport/internal/ratelimit"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OAuthHandler drives the browser-facing half of the authorization-code
// flow: minting state and PKCE material, redirecting to the provider, and
// finishing the round-trip on callback.
type OAuthHandler struct {
	uc        usecase.AuthUsecase
	providers map[entity.AuthMethod]service.OAuthProvider
	cfg       *config.Config
	signer    *ratelimit.CookieSigner
	logger    *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(uc usecase.AuthUsecase, providers []service.OAuthProvider, cfg *config.Config, signer *ratelimit.CookieSigner, logger *slog.Logger) *OAuthHandler {
	providerMap := make(map[entity.AuthMethod]service.OAuthProvider, len(providers))
	for _, p := range providers {
		providerMap[p.Provider()] = p
	}

	return &OAuthHandler{
		uc:        uc,
		providers: providerMap,
		cfg:       cfg,
		signer:    signer,
		logger:    logger,
	}
}

// randomToken returns a URL-safe random string with 256 bits of entropy.
func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate random token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (h *OAuthHandler) provider(c echo.Context) (service.OAuthProvider, bool) {
	method := entity.AuthMethod(c.Param("provider"))
	provider, ok := h.providers[method]

	return provider, ok
}

// Begin starts the provider round-trip. The state and PKCE verifier are
// pinned to the browser via short-lived cookies so the callback can prove
// the same client started the flow.
func (h *OAuthHandler) Begin(c echo.Context) error {
	provider, ok := h.provider(c)
	if !ok {
		return response.BadRequest(c, "UNKNOWN_PROVIDER", "Unknown OAuth provider")
	}

	state, err := randomToken()
	if err != nil {
		return errors.WithStack(err)
	}
	verifier, err := randomToken()
	if err != nil {
		return errors.WithStack(err)
	}

	cookie.SetEphemeral(c, h.cfg, cookie.StateCookie, state)
	cookie.SetEphemeral(c, h.cfg, cookie.VerifierCookie, verifier)

	return c.Redirect(http.StatusTemporaryRedirect, provider.AuthorizationURL(state, verifier))
}

// Callback finishes the provider round-trip. A missing or mismatched state
// aborts before any provider traffic.
func (h *OAuthHandler) Callback(c echo.Context) error {
	providerSvc, ok := h.provider(c)
	if !ok {
		return response.BadRequest(c, "UNKNOWN_PROVIDER", "Unknown OAuth provider")
	}

	expectedState := cookie.TakeEphemeral(c, h.cfg, cookie.StateCookie)
	verifier := cookie.TakeEphemeral(c, h.cfg, cookie.VerifierCookie)

	if errCode := c.QueryParam("error"); errCode != "" {
		h.logger.Info("OAuth flow cancelled by provider",
			slog.String("provider", providerSvc.Provider().String()),
			slog.String("error", errCode))

		return response.BadRequest(c, "OAUTH_CANCELLED", "Authentication was cancelled")
	}

	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" || state == "" || expectedState == "" || state != expectedState {
		return response.BadRequest(c, "INVALID_OAUTH_STATE", "Invalid or expired OAuth state")
	}

	result, err := h.uc.OAuthCallback(c.Request().Context(), &usecase.OAuthCallbackInput{
		Provider:     providerSvc.Provider(),
		Code:         code,
		CodeVerifier: verifier,
		Limit: ratelimit.Request{
			IP:        c.RealIP(),
			UserAgent: c.Request().UserAgent(),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	cookie.ApplySession(c, h.cfg, result.Cookie)

	return response.Success(c, http.StatusOK, authResultView{
		Status: string(result.Status),
		User:   newUserView(result.User),
	}, "Authentication successful")
}
