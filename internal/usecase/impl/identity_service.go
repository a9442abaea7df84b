package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindOrCreateForPasswordSignup creates a local account for the email. An
// existing account that already carries the email method is rejected
// untouched; an OAuth-first account instead gets the password attached and
// the email method appended, so one person stays one user row.
func (srv *identityService) FindOrCreateForPasswordSignup(ctx context.Context, input *usecase.PasswordSignupInput) (*usecase.PasswordSignupOutput, error) {
	srv.log(ctx).Debug("Password signup", slog.String("email", input.Email))

	var user *entity.User
	isNew := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			if existing.AuthMethods.Contains(entity.MethodEmail) {
				return domainerrors.ErrEmailInUse
			}

			// OAuth-first account adding a password.
			existing.PasswordHash = input.PasswordHash
			existing.AuthMethods = existing.AuthMethods.Add(entity.MethodEmail)
			if err := userRepo.Update(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to attach password")
			}
			user = existing

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up email")
		}

		user = &entity.User{
			ID:           uuid.New(),
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: input.PasswordHash,
			AuthMethods:  entity.AuthMethods{entity.MethodEmail},
		}
		if err := userRepo.Create(ctx, user); err != nil {
			// A concurrent signup for the same email can slip past the
			// lookup; the unique index settles it.
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailInUse
			}

			return errors.Wrap(err, "failed to create user")
		}
		isNew = true

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailInUse) {
			srv.log(ctx).Info("Signup rejected, email in use", slog.String("email", input.Email))

			return nil, err
		}
		srv.log(ctx).Error("Failed to sign up user", slog.Any("error", err), slog.String("email", input.Email))

		return nil, errors.Wrap(err, "failed to sign up user")
	}
	if isNew {
		srv.log(ctx).Info("Created user account", slog.Any("user_id", user.ID))
	} else {
		srv.log(ctx).Info("Attached password to existing account", slog.Any("user_id", user.ID))
	}

	return &usecase.PasswordSignupOutput{User: user, IsNew: isNew}, nil
}

// FindOrCreateForOAuth resolves a provider identity to a local user ID.
// Resolution order: existing provider link, then an account with the same
// email (which gets linked), then a brand-new account. Concurrent callbacks
// for the same identity race on the unique indexes; the loser retries once,
// at which point the winner's rows exist and resolution succeeds as a lookup.
func (srv *identityService) FindOrCreateForOAuth(ctx context.Context, input *usecase.OAuthSignInInput) (uuid.UUID, error) {
	if !input.Profile.EmailVerified {
		srv.log(ctx).Info("Rejected OAuth sign-in, upstream email unverified",
			slog.String("provider", input.Provider.String()))

		return uuid.Nil, domainerrors.ErrUnverifiedUpstreamEmail
	}

	userID, err := srv.resolveOAuth(ctx, input)
	if err != nil && (errors.Is(err, repository.ErrDuplicateEmail) || errors.Is(err, repository.ErrDuplicateOAuthAccount)) {
		srv.log(ctx).Info("Concurrent OAuth signup detected, retrying as lookup",
			slog.String("provider", input.Provider.String()))

		userID, err = srv.resolveOAuth(ctx, input)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to resolve OAuth identity", slog.Any("error", err),
			slog.String("provider", input.Provider.String()))

		return uuid.Nil, errors.Wrap(err, "failed to resolve oauth identity")
	}

	return userID, nil
}

// resolveOAuth runs one resolution attempt in a single transaction. Unique
// constraint violations surface as repository duplicate sentinels for the
// caller to retry.
func (srv *identityService) resolveOAuth(ctx context.Context, input *usecase.OAuthSignInInput) (uuid.UUID, error) {
	var userID uuid.UUID

	profile := input.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		oauthRepo := repoFactory.OAuthAccountRepo()

		// 1. Returning user: the provider identity is already linked.
		account, err := oauthRepo.Find(ctx, input.Provider, profile.ProviderUserID)
		if err == nil {
			userID = account.UserID

			return nil
		}
		if !errors.Is(err, repository.ErrOAuthAccountNotFound) {
			return errors.Wrap(err, "failed to look up oauth account")
		}

		// 2. Same email, different door: link the provider to the account.
		user, err := userRepo.FindByEmail(ctx, profile.Email)
		if err == nil {
			link := &entity.OAuthAccount{
				Provider:       input.Provider,
				ProviderUserID: profile.ProviderUserID,
				UserID:         user.ID,
			}
			if err := oauthRepo.Create(ctx, link); err != nil {
				return errors.Wrap(err, "failed to link oauth account")
			}

			user.AuthMethods = user.AuthMethods.Add(input.Provider)
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to record auth method")
			}
			userID = user.ID

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up email")
		}

		// 3. First visit: create the account and the link together. The
		// provider vouched for the email, so it starts verified.
		user = &entity.User{
			ID:              uuid.New(),
			Email:           profile.Email,
			Name:            profile.Name,
			AvatarURL:       profile.AvatarURL,
			IsEmailVerified: true,
			AuthMethods:     entity.AuthMethods{input.Provider},
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		link := &entity.OAuthAccount{
			Provider:       input.Provider,
			ProviderUserID: profile.ProviderUserID,
			UserID:         user.ID,
		}
		if err := oauthRepo.Create(ctx, link); err != nil {
			return errors.Wrap(err, "failed to create oauth account")
		}
		userID = user.ID

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}
