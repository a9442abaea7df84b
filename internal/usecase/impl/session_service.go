// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"time"

	"passport/config"
	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const sessionTokenBytes = 32

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager repository.TransactionManager
	lifetime  time.Duration
	logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		txManager: txManager,
		lifetime:  cfg.Session.Lifetime,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// newSessionToken generates an opaque token with 256 bits of entropy.
func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// clearCookie is the directive that removes the session cookie.
func clearCookie() *usecase.SessionCookie {
	return &usecase.SessionCookie{Clear: true}
}

// Create mints a new session for the user and returns the cookie to issue.
func (srv *sessionService) Create(ctx context.Context, userID uuid.UUID) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Creating session", slog.Any("user_id", userID))

	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		ID:        token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(srv.lifetime),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SessionRepo().Create(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create session", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to create session")
	}
	srv.log(ctx).Debug("Successfully created session", slog.Any("user_id", userID))

	return &usecase.SessionOutput{
		Session: session,
		Cookie: &usecase.SessionCookie{
			Value:     session.ID,
			ExpiresAt: session.ExpiresAt,
		},
	}, nil
}

// Validate resolves a session token to its user. Expired sessions are deleted
// on sight; sessions in the last third of their lifetime are extended, and the
// refreshed cookie is handed back to the caller.
func (srv *sessionService) Validate(ctx context.Context, sessionID string) (*usecase.ValidateSessionOutput, error) {
	if sessionID == "" {
		return &usecase.ValidateSessionOutput{Cookie: clearCookie()}, nil
	}

	var (
		user    *entity.User
		session *entity.Session
		cookie  *usecase.SessionCookie
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		found, err := sessionRepo.FindByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				cookie = clearCookie()

				return nil
			}

			return errors.Wrap(err, "failed to find session")
		}

		now := time.Now()
		if found.Expired(now) {
			// Lazy expiry. The row is useless, drop it and clear the cookie.
			if err := sessionRepo.Delete(ctx, found.ID); err != nil {
				return errors.Wrap(err, "failed to delete expired session")
			}
			cookie = clearCookie()

			return nil
		}

		owner, err := repoFactory.UserRepo().FindByID(ctx, found.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Orphaned session, the account is gone.
				if err := sessionRepo.Delete(ctx, found.ID); err != nil {
					return errors.Wrap(err, "failed to delete orphaned session")
				}
				cookie = clearCookie()

				return nil
			}

			return errors.Wrap(err, "failed to find session user")
		}

		if found.Fresh(now, srv.lifetime/3) {
			found.ExpiresAt = now.Add(srv.lifetime)
			if err := sessionRepo.UpdateExpiry(ctx, found.ID, found.ExpiresAt); err != nil {
				return errors.Wrap(err, "failed to extend session")
			}
			cookie = &usecase.SessionCookie{
				Value:     found.ID,
				ExpiresAt: found.ExpiresAt,
			}
		}

		user = owner
		session = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to validate session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to validate session")
	}

	return &usecase.ValidateSessionOutput{
		User:    user,
		Session: session,
		Cookie:  cookie,
	}, nil
}

// Invalidate deletes a session. Deleting an unknown token is a no-op.
func (srv *sessionService) Invalidate(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SessionRepo().Delete(ctx, sessionID); err != nil {
			return errors.Wrap(err, "failed to delete session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to invalidate session", slog.Any("error", err))

		return errors.Wrap(err, "failed to invalidate session")
	}
	srv.log(ctx).Info("Successfully invalidated session")

	return nil
}

// InvalidateAll deletes every session the user holds.
func (srv *sessionService) InvalidateAll(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Invalidating all sessions", slog.Any("user_id", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SessionRepo().DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to invalidate all sessions", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(err, "failed to invalidate all sessions")
	}
	srv.log(ctx).Info("Successfully invalidated all sessions", slog.Any("user_id", userID))

	return nil
}

// CleanupExpired removes expired session rows in bulk.
func (srv *sessionService) CleanupExpired(ctx context.Context) (int, error) {
	srv.log(ctx).Info("Cleaning up expired sessions")

	var deleted int

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.SessionRepo().DeleteExpired(ctx, time.Now())
		if err != nil {
			return errors.Wrap(err, "failed to delete expired sessions")
		}
		deleted = count

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to cleanup expired sessions", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to cleanup expired sessions")
	}
	srv.log(ctx).Info("Successfully cleaned up expired sessions", slog.Int("deleted_count", deleted))

	return deleted, nil
}
