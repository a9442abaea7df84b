// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"passport/config"
	"passport/internal/delivery/http/cookie"
	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/response"
	"passport/internal/domain/entity"
	"passport/internal/ratelimit"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the credential and verification flows.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	signer *ratelimit.CookieSigner
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, signer *ratelimit.CookieSigner, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		signer: signer,
		logger: logger,
	}
}

// limitRequest captures the identities the rate rules count by. The limiter
// cookie is only trusted when its signature checks out.
func (h *AuthHandler) limitRequest(c echo.Context) ratelimit.Request {
	req := ratelimit.Request{
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}

	if limiterCookie, err := c.Cookie(h.cfg.RateLimit.CookieName); err == nil {
		if id, err := h.signer.Verify(limiterCookie.Value); err == nil {
			req.CookieID = id
		}
	}

	return req
}

// userView is the safe subset of a user returned to clients.
type userView struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	Name            string   `json:"name"`
	AvatarURL       string   `json:"avatarUrl,omitempty"`
	IsEmailVerified bool     `json:"isEmailVerified"`
	AuthMethods     []string `json:"authMethods"`
}

func newUserView(user *entity.User) userView {
	return userView{
		ID:              user.ID.String(),
		Email:           user.Email,
		Name:            user.Name,
		AvatarURL:       user.AvatarURL,
		IsEmailVerified: user.IsEmailVerified,
		AuthMethods:     user.AuthMethods.ToStrings(),
	}
}

// authResultView pairs the user with the outcome status.
type authResultView struct {
	Status string   `json:"status"`
	User   userView `json:"user"`
}

// SignUp handles the password registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input *usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	input.Limit = h.limitRequest(c)

	result, err := h.uc.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	cookie.ApplySession(c, h.cfg, result.Cookie)

	return response.Success(c, http.StatusCreated, authResultView{
		Status: string(result.Status),
		User:   newUserView(result.User),
	}, "Account created, verification code sent")
}

// LogIn handles the password login request.
func (h *AuthHandler) LogIn(c echo.Context) error {
	var input *usecase.LogInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	input.Limit = h.limitRequest(c)

	result, err := h.uc.LogIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	cookie.ApplySession(c, h.cfg, result.Cookie)

	return response.Success(c, http.StatusOK, authResultView{
		Status: string(result.Status),
		User:   newUserView(result.User),
	}, "Login successful")
}

// LogOut handles the logout request. Always succeeds, even with a stale
// session cookie.
func (h *AuthHandler) LogOut(c echo.Context) error {
	directive, err := h.uc.LogOut(c.Request().Context(), cookie.ReadSession(c, h.cfg))
	if err != nil {
		return errors.WithStack(err)
	}

	cookie.ApplySession(c, h.cfg, directive)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// VerifyEmailPreflight issues the signed limiter cookie the verification form
// submission is counted by. Submissions without this cookie are refused.
// A browser that already holds a valid cookie keeps its id, so reloading the
// page cannot reset the counter.
func (h *AuthHandler) VerifyEmailPreflight(c echo.Context) error {
	value := ""
	if existing, err := c.Cookie(h.cfg.RateLimit.CookieName); err == nil {
		if _, err := h.signer.Verify(existing.Value); err == nil {
			value = existing.Value
		}
	}

	if value == "" {
		minted, err := h.signer.NewID()
		if err != nil {
			return errors.WithStack(err)
		}
		value = minted
	}

	cookie.SetEphemeral(c, h.cfg, h.cfg.RateLimit.CookieName, value)

	return response.Success(c, http.StatusOK, nil, "Ready for verification")
}

// VerifyEmail handles a verification code submission for the session user.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var input *usecase.VerifyEmailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	input.SessionID = cookie.ReadSession(c, h.cfg)
	input.Limit = h.limitRequest(c)

	user, err := h.uc.VerifyEmail(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "Email verified")
}

// ResendVerificationCode handles a fresh-code request for the session user.
func (h *AuthHandler) ResendVerificationCode(c echo.Context) error {
	input := &usecase.ResendCodeInput{
		SessionID: cookie.ReadSession(c, h.cfg),
		Limit:     h.limitRequest(c),
	}

	if err := h.uc.ResendVerificationCode(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

// Me returns the session user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	return response.Success(c, http.StatusOK, newUserView(user), "Profile retrieved")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
