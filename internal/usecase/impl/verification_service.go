package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	codeSpace = 1000000 // 6 decimal digits
	codeTTL   = 5 * time.Minute
)

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	txManager repository.TransactionManager
	mailer    service.MailSender
	logger    *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(
	txManager repository.TransactionManager,
	mailer service.MailSender,
	logger *slog.Logger,
) usecase.VerificationUsecase {
	return &verificationService{
		txManager: txManager,
		mailer:    mailer,
		logger:    logger,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// newVerificationCode draws a uniform 6-digit code from crypto/rand.
func newVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate verification code")
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Generate replaces the user's outstanding code with a fresh one. The delete
// and insert run in one transaction so a crash between them cannot leave two
// live codes, and the old code stops working the moment the new one exists.
func (srv *verificationService) Generate(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	srv.log(ctx).Debug("Generating verification code", slog.Any("user_id", userID))

	code, err := newVerificationCode()
	if err != nil {
		return "", err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()

		if err := codeRepo.DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete previous codes")
		}

		record := &entity.EmailVerificationCode{
			UserID:    userID,
			Email:     email,
			Code:      code,
			ExpiresAt: time.Now().Add(codeTTL),
		}
		if err := codeRepo.Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to store verification code")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to generate verification code", slog.Any("error", err), slog.Any("user_id", userID))

		return "", errors.Wrap(err, "failed to generate verification code")
	}
	srv.log(ctx).Debug("Successfully generated verification code", slog.Any("user_id", userID))

	return code, nil
}

// Send delivers a verification code by email.
func (srv *verificationService) Send(ctx context.Context, email string, code string) error {
	body := fmt.Sprintf("<p>Your verification code is:</p><h2>%s</h2><p>It expires in 5 minutes.</p>", code)

	if err := srv.mailer.Send(ctx, email, "Your email verification code", body); err != nil {
		srv.log(ctx).Error("Failed to send verification code", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrEmailSendFailed, err.Error())
	}
	srv.log(ctx).Info("Sent verification code email")

	return nil
}

// Verify consumes the user's outstanding code. The checks run in a fixed
// order: missing code, then value mismatch, then expiry. Only a successful
// match deletes the code; wrong guesses leave it in place for the next
// attempt. The delete and the user's verified-flag flip share one
// transaction, so the code cannot be consumed without the user ending up
// verified.
func (srv *verificationService) Verify(ctx context.Context, userID uuid.UUID, code string) error {
	srv.log(ctx).Debug("Verifying code", slog.Any("user_id", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()

		record, err := codeRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				return domainerrors.ErrCodeNotFound
			}

			return errors.Wrap(err, "failed to find verification code")
		}

		if subtle.ConstantTimeCompare([]byte(record.Code), []byte(code)) != 1 {
			return domainerrors.ErrCodeMismatch
		}

		if record.Expired(time.Now()) {
			return domainerrors.ErrCodeExpired
		}

		if err := codeRepo.DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to consume verification code")
		}

		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		user.Verify()
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to mark user verified")
		}

		return nil
	})
	if err != nil {
		if domainerrors.IsAppError(err) {
			srv.log(ctx).Info("Verification code rejected", slog.Any("user_id", userID))

			return err
		}
		srv.log(ctx).Error("Failed to verify code", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(err, "failed to verify code")
	}
	srv.log(ctx).Info("Successfully verified email", slog.Any("user_id", userID))

	return nil
}
