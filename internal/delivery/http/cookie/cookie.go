// Package cookie centralizes the cookie directives the auth flows issue.
package cookie

import (
	"net/http"
	"time"

	"passport/config"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// StateCookie carries the OAuth CSRF state between begin and callback.
	StateCookie = "oauth_state"
	// VerifierCookie carries the PKCE verifier between begin and callback.
	VerifierCookie = "oauth_code_verifier"

	// oauthCookieTTL bounds how long a pending OAuth round-trip stays valid.
	oauthCookieTTL = 10 * time.Minute
)

// ApplySession writes or clears the session cookie per the directive.
// Directives are produced by the session components; nothing else in the
// delivery layer decides cookie state.
func ApplySession(c echo.Context, cfg *config.Config, directive *usecase.SessionCookie) {
	if directive == nil {
		return
	}

	cookie := &http.Cookie{
		Name:     cfg.Session.CookieName,
		Path:     "/",
		Domain:   cfg.Session.CookieDomain,
		HttpOnly: true,
		Secure:   cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	if directive.Clear {
		cookie.Value = ""
		cookie.MaxAge = -1
	} else {
		cookie.Value = directive.Value
		cookie.Expires = directive.ExpiresAt
	}

	c.SetCookie(cookie)
}

// ReadSession returns the bearer token from the session cookie, or empty.
func ReadSession(c echo.Context, cfg *config.Config) string {
	cookie, err := c.Cookie(cfg.Session.CookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// SetEphemeral writes a short-lived cookie for the OAuth round-trip.
func SetEphemeral(c echo.Context, cfg *config.Config, name, value string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(oauthCookieTTL.Seconds()),
	})
}

// TakeEphemeral reads and immediately clears a short-lived cookie.
func TakeEphemeral(c echo.Context, cfg *config.Config, name string) string {
	found, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	return found.Value
}
