package impl

import (
	"io"
	"log/slog"
	"time"

	"passport/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(sessionLifetime time.Duration) *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			Lifetime:   sessionLifetime,
			CookieName: "auth_session",
		},
	}
}
