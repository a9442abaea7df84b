package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/ratelimit"
	"passport/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// AuthLimiters groups the per-flow request limiters. Every flow is counted
// by client address; the verification-code flows additionally count by the
// signed cookie issued during preflight, so submissions without the cookie
// are refused outright. Code submission and code resend each get their own
// budget.
type AuthLimiters struct {
	SignUp     *ratelimit.Limiter
	LogIn      *ratelimit.Limiter
	OAuth      *ratelimit.Limiter
	VerifyCode *ratelimit.Limiter
	SendCode   *ratelimit.Limiter
}

// NewAuthLimiters builds the limiter set on a shared counter store.
func NewAuthLimiters(store ratelimit.CounterStore) *AuthLimiters {
	addressRules := []ratelimit.Rule{
		{Kind: ratelimit.KindIP, Max: 10, Window: time.Hour},
		{Kind: ratelimit.KindIPUA, Max: 5, Window: time.Minute},
	}
	codeRules := append([]ratelimit.Rule{
		{Kind: ratelimit.KindCookie, Max: 2, Window: time.Minute},
	}, addressRules...)

	return &AuthLimiters{
		SignUp:     ratelimit.New("signup", store, addressRules...),
		LogIn:      ratelimit.New("login", store, addressRules...),
		OAuth:      ratelimit.New("oauth", store, addressRules...),
		VerifyCode: ratelimit.New("verify", store, codeRules...),
		SendCode:   ratelimit.New("resend", store, codeRules...),
	}
}

// authService implements the AuthUsecase interface. It owns the flow
// ordering: rate limits first, then credentials, then account work, then the
// session.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	providers    map[entity.AuthMethod]service.OAuthProvider
	sessions     usecase.SessionUsecase
	identity     usecase.IdentityUsecase
	verification usecase.VerificationUsecase
	limiters     *AuthLimiters
	validate     *validator.Validate
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	providers []service.OAuthProvider,
	sessions usecase.SessionUsecase,
	identity usecase.IdentityUsecase,
	verification usecase.VerificationUsecase,
	limiters *AuthLimiters,
	logger *slog.Logger,
) usecase.AuthUsecase {
	providerMap := make(map[entity.AuthMethod]service.OAuthProvider, len(providers))
	for _, p := range providers {
		providerMap[p.Provider()] = p
	}

	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		providers:    providerMap,
		sessions:     sessions,
		identity:     identity,
		verification: verification,
		limiters:     limiters,
		validate:     validator.New(),
		logger:       logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// checkLimit consumes one attempt from the limiter. Store failures are
// logged and let the request through; losing a counter beats refusing every
// login while the store is down.
func (srv *authService) checkLimit(ctx context.Context, limiter *ratelimit.Limiter, req ratelimit.Request) error {
	result, err := limiter.Check(ctx, req)
	if err != nil {
		srv.log(ctx).Warn("Rate limit check failed, allowing request", slog.Any("error", err))

		return nil
	}
	if result.Limited {
		srv.log(ctx).Info("Request rate limited", slog.String("ip", req.IP),
			slog.Duration("retry_after", result.RetryAfter))

		return domainerrors.NewRateLimitedError(result.RetryAfter)
	}

	return nil
}

func (srv *authService) validateInput(input any) error {
	if err := srv.validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// SignUp registers a local account. The new user gets a session immediately;
// verification gates sensitive routes, not sign-in itself.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthResult, error) {
	if err := srv.checkLimit(ctx, srv.limiters.SignUp, input.Limit); err != nil {
		return nil, err
	}
	if err := srv.validateInput(input); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	signup, err := srv.identity.FindOrCreateForPasswordSignup(ctx, &usecase.PasswordSignupInput{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	status := usecase.StatusAuthenticated
	if !signup.User.IsEmailVerified {
		status = usecase.StatusNeedsVerification

		// A failed delivery must not roll back the account; the user can ask
		// for a fresh code from the verification page.
		if code, err := srv.verification.Generate(ctx, signup.User.ID, signup.User.Email); err != nil {
			srv.log(ctx).Error("Failed to generate verification code after signup", slog.Any("error", err))
		} else if err := srv.verification.Send(ctx, signup.User.Email, code); err != nil {
			srv.log(ctx).Error("Failed to send verification code after signup", slog.Any("error", err))
		}
	}

	session, err := srv.sessions.Create(ctx, signup.User.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthResult{
		Status: status,
		User:   signup.User,
		Cookie: session.Cookie,
	}, nil
}

// LogIn authenticates a password credential. Unknown email, missing password
// credential, and wrong password all collapse into one generic rejection.
func (srv *authService) LogIn(ctx context.Context, input *usecase.LogInInput) (*usecase.AuthResult, error) {
	if err := srv.checkLimit(ctx, srv.limiters.LogIn, input.Limit); err != nil {
		return nil, err
	}
	if err := srv.validateInput(input); err != nil {
		return nil, err
	}

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to log in", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to log in")
	}

	if !user.HasPassword() {
		// OAuth-only account. Indistinguishable from a bad password on
		// purpose.
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	session, err := srv.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	status := usecase.StatusAuthenticated
	if !user.IsEmailVerified {
		status = usecase.StatusNeedsVerification
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID))

	return &usecase.AuthResult{
		Status: status,
		User:   user,
		Cookie: session.Cookie,
	}, nil
}

// LogOut invalidates the session and returns the clearing cookie directive.
func (srv *authService) LogOut(ctx context.Context, sessionID string) (*usecase.SessionCookie, error) {
	if err := srv.sessions.Invalidate(ctx, sessionID); err != nil {
		return nil, err
	}

	return &usecase.SessionCookie{Clear: true}, nil
}

// VerifyEmail consumes the session user's outstanding verification code.
func (srv *authService) VerifyEmail(ctx context.Context, input *usecase.VerifyEmailInput) (*entity.User, error) {
	if err := srv.checkLimit(ctx, srv.limiters.VerifyCode, input.Limit); err != nil {
		return nil, err
	}
	if err := srv.validateInput(input); err != nil {
		return nil, err
	}

	user, err := srv.sessionUser(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := srv.verification.Verify(ctx, user.ID, input.Code); err != nil {
		return nil, err
	}

	user.Verify()
	srv.log(ctx).Info("Email verified", slog.Any("user_id", user.ID))

	return user, nil
}

// ResendVerificationCode replaces and re-sends the session user's code.
func (srv *authService) ResendVerificationCode(ctx context.Context, input *usecase.ResendCodeInput) error {
	if err := srv.checkLimit(ctx, srv.limiters.SendCode, input.Limit); err != nil {
		return err
	}

	user, err := srv.sessionUser(ctx, input.SessionID)
	if err != nil {
		return err
	}
	if user.IsEmailVerified {
		return domainerrors.ErrValidationFailed.WithDetails("email already verified")
	}

	code, err := srv.verification.Generate(ctx, user.ID, user.Email)
	if err != nil {
		return err
	}

	return srv.verification.Send(ctx, user.Email, code)
}

// OAuthCallback finishes a provider round-trip: exchange the code, fetch the
// profile, resolve it to a local account, and mint a session.
func (srv *authService) OAuthCallback(ctx context.Context, input *usecase.OAuthCallbackInput) (*usecase.AuthResult, error) {
	if err := srv.checkLimit(ctx, srv.limiters.OAuth, input.Limit); err != nil {
		return nil, err
	}

	provider, ok := srv.providers[input.Provider]
	if !ok {
		return nil, domainerrors.ErrUnknownProvider
	}

	accessToken, err := provider.ExchangeCode(ctx, input.Code, input.CodeVerifier)
	if err != nil {
		srv.log(ctx).Error("Failed to exchange authorization code", slog.Any("error", err),
			slog.String("provider", input.Provider.String()))

		return nil, errors.Wrap(domainerrors.ErrProviderExchangeFailed, err.Error())
	}

	profile, err := provider.FetchProfile(ctx, accessToken)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch provider profile", slog.Any("error", err),
			slog.String("provider", input.Provider.String()))

		return nil, errors.Wrap(domainerrors.ErrProviderExchangeFailed, err.Error())
	}

	userID, err := srv.identity.FindOrCreateForOAuth(ctx, &usecase.OAuthSignInInput{
		Provider: input.Provider,
		Profile:  profile,
	})
	if err != nil {
		return nil, err
	}

	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load user")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to load user after OAuth resolution", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user")
	}

	session, err := srv.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	status := usecase.StatusAuthenticated
	if !user.IsEmailVerified {
		status = usecase.StatusNeedsVerification
	}

	srv.log(ctx).Info("OAuth sign-in completed", slog.Any("user_id", user.ID),
		slog.String("provider", input.Provider.String()))

	return &usecase.AuthResult{
		Status: status,
		User:   user,
		Cookie: session.Cookie,
	}, nil
}

// sessionUser resolves the calling session to its user.
func (srv *authService) sessionUser(ctx context.Context, sessionID string) (*entity.User, error) {
	out, err := srv.sessions.Validate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return out.User, nil
}
