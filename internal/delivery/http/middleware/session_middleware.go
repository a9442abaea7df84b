package middleware

import (
	"passport/config"
	"passport/internal/delivery/http/cookie"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// ContextKeyUser holds the *entity.User for the validated session.
	ContextKeyUser = "user"
	// ContextKeySession holds the *entity.Session for the validated session.
	ContextKeySession = "session"
)

// SessionMiddleware resolves the session cookie on every request. Handlers
// downstream read the user from the echo context; cookie maintenance
// (extension re-issue, stale clear) happens here.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
	cfg      *config.Config
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, cfg: cfg}
}

// LoadSession validates the session cookie if present and stashes the user
// and session on the request context. Requests without a cookie pass through
// untouched.
func (m *SessionMiddleware) LoadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := cookie.ReadSession(c, m.cfg)
		if token == "" {
			return next(c)
		}

		out, err := m.sessions.Validate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		cookie.ApplySession(c, m.cfg, out.Cookie)

		if out.User != nil {
			c.Set(ContextKeyUser, out.User)
			c.Set(ContextKeySession, out.Session)
		}

		return next(c)
	}
}

// RequireAuth rejects requests that did not resolve to a valid session.
// It must be used AFTER the LoadSession middleware.
func (m *SessionMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := CurrentUser(c); !ok {
			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}

// CurrentUser returns the session user stashed by LoadSession.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*entity.User)

	return user, ok
}

// CurrentSession returns the session stashed by LoadSession.
func CurrentSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(ContextKeySession).(*entity.Session)

	return session, ok
}
