package impl

import (
	"context"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service   usecase.IdentityUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewIdentityService(txManager, newDiscardLogger())

	return identityServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func githubProfile() *service.OAuthProfile {
	return &service.OAuthProfile{
		ProviderUserID: "8437261",
		Email:          "test@example.com",
		EmailVerified:  true,
		Name:           "Test User",
		AvatarURL:      "https://avatars.example.com/u/8437261",
	}
}

func TestIdentityService_PasswordSignup_NewUser(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.PasswordSignupInput{
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "hashed_password",
	}

	var created *entity.User

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					created = user
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.FindOrCreateForPasswordSignup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.IsNew)

	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, input.Email, created.Email)
	assert.Equal(t, input.PasswordHash, created.PasswordHash)
	assert.False(t, created.IsEmailVerified)
	assert.Equal(t, entity.AuthMethods{entity.MethodEmail}, created.AuthMethods)
}

func TestIdentityService_PasswordSignup_EmailInUse(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.PasswordSignupInput{
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "hashed_password",
	}

	existing := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "other_hash",
		AuthMethods:  entity.AuthMethods{entity.MethodEmail},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			// The address already has a password credential; signup is
			// rejected and the account is left untouched.
			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(existing, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.FindOrCreateForPasswordSignup(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))
	assert.Equal(t, "other_hash", existing.PasswordHash)
}

func TestIdentityService_PasswordSignup_AttachesPasswordToOAuthFirstUser(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.PasswordSignupInput{
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "hashed_password",
	}

	existing := &entity.User{
		ID:              uuid.New(),
		Email:           input.Email,
		Name:            "Test User",
		IsEmailVerified: true,
		AuthMethods:     entity.AuthMethods{entity.MethodGoogle},
	}

	var updated *entity.User

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			// The address belongs to a Google-only account; signing up with a
			// password attaches the credential instead of rejecting.
			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(existing, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					updated = user
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.FindOrCreateForPasswordSignup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.False(t, output.IsNew)

	require.NotNil(t, updated)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, input.PasswordHash, updated.PasswordHash)
	assert.Contains(t, updated.AuthMethods, entity.MethodGoogle)
	assert.Contains(t, updated.AuthMethods, entity.MethodEmail)
	// Verification state is untouched by the attach.
	assert.True(t, updated.IsEmailVerified)
}

func TestIdentityService_PasswordSignup_ConcurrentDuplicate(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.PasswordSignupInput{
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "hashed_password",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			// A concurrent signup won the race between the lookup and the
			// insert; the unique index reports the conflict.
			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrDuplicateEmail)

			return fn(mockFactory)
		})

	output, err := fx.service.FindOrCreateForPasswordSignup(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))
}

func TestIdentityService_OAuth_ReturningUser(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	profile := githubProfile()
	linkedUserID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOAuthRepo := mockRepo.NewMockOAuthAccountRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OAuthAccountRepo().Return(mockOAuthRepo)

			mockOAuthRepo.EXPECT().
				Find(ctx, entity.MethodGitHub, profile.ProviderUserID).
				Return(&entity.OAuthAccount{
					Provider:       entity.MethodGitHub,
					ProviderUserID: profile.ProviderUserID,
					UserID:         linkedUserID,
				}, nil)

			return fn(mockFactory)
		})

	userID, err := fx.service.FindOrCreateForOAuth(ctx, &usecase.OAuthSignInInput{
		Provider: entity.MethodGitHub,
		Profile:  profile,
	})

	require.NoError(t, err)
	assert.Equal(t, linkedUserID, userID)
}

func TestIdentityService_OAuth_FirstVisitCreatesAccount(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	profile := githubProfile()

	var (
		createdUser *entity.User
		createdLink *entity.OAuthAccount
	)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOAuthRepo := mockRepo.NewMockOAuthAccountRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OAuthAccountRepo().Return(mockOAuthRepo)

			mockOAuthRepo.EXPECT().
				Find(ctx, entity.MethodGitHub, profile.ProviderUserID).
				Return(nil, repository.ErrOAuthAccountNotFound)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, profile.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					createdUser = user
				}).
				Return(nil)
			mockOAuthRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.OAuthAccount")).
				Run(func(ctx context.Context, account *entity.OAuthAccount) {
					createdLink = account
				}).
				Return(nil)

			return fn(mockFactory)
		})

	userID, err := fx.service.FindOrCreateForOAuth(ctx, &usecase.OAuthSignInInput{
		Provider: entity.MethodGitHub,
		Profile:  profile,
	})

	require.NoError(t, err)

	require.NotNil(t, createdUser)
	assert.Equal(t, createdUser.ID, userID)
	assert.Equal(t, profile.Email, createdUser.Email)
	assert.Equal(t, profile.Name, createdUser.Name)
	assert.Equal(t, profile.AvatarURL, createdUser.AvatarURL)
	// The provider vouched for the address; no local code dance needed.
	assert.True(t, createdUser.IsEmailVerified)
	assert.Empty(t, createdUser.PasswordHash)
	assert.Equal(t, entity.AuthMethods{entity.MethodGitHub}, createdUser.AuthMethods)

	require.NotNil(t, createdLink)
	assert.Equal(t, entity.MethodGitHub, createdLink.Provider)
	assert.Equal(t, profile.ProviderUserID, createdLink.ProviderUserID)
	assert.Equal(t, createdUser.ID, createdLink.UserID)
}

func TestIdentityService_OAuth_LinksMatchingEmail(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	profile := githubProfile()
	existing := &entity.User{
		ID:           uuid.New(),
		Email:        profile.Email,
		PasswordHash: "hashed_password",
		AuthMethods:  entity.AuthMethods{entity.MethodEmail},
	}

	var (
		createdLink *entity.OAuthAccount
		updatedUser *entity.User
	)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOAuthRepo := mockRepo.NewMockOAuthAccountRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OAuthAccountRepo().Return(mockOAuthRepo)

			mockOAuthRepo.EXPECT().
				Find(ctx, entity.MethodGitHub, profile.ProviderUserID).
				Return(nil, repository.ErrOAuthAccountNotFound)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, profile.Email).
				Return(existing, nil)

			mockOAuthRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.OAuthAccount")).
				Run(func(ctx context.Context, account *entity.OAuthAccount) {
					createdLink = account
				}).
				Return(nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					updatedUser = user
				}).
				Return(nil)

			return fn(mockFactory)
		})

	userID, err := fx.service.FindOrCreateForOAuth(ctx, &usecase.OAuthSignInInput{
		Provider: entity.MethodGitHub,
		Profile:  profile,
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, userID)

	require.NotNil(t, createdLink)
	assert.Equal(t, existing.ID, createdLink.UserID)

	require.NotNil(t, updatedUser)
	assert.Contains(t, updatedUser.AuthMethods, entity.MethodEmail)
	assert.Contains(t, updatedUser.AuthMethods, entity.MethodGitHub)
	// Linking records the method; it does not vouch for the local email flow.
	assert.False(t, updatedUser.IsEmailVerified)
}

func TestIdentityService_OAuth_RejectsUnverifiedUpstreamEmail(t *testing.T) {
	fx := createTestIdentityService(t)

	profile := githubProfile()
	profile.EmailVerified = false

	userID, err := fx.service.FindOrCreateForOAuth(context.Background(), &usecase.OAuthSignInInput{
		Provider: entity.MethodGitHub,
		Profile:  profile,
	})

	assert.Equal(t, uuid.Nil, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrUnverifiedUpstreamEmail))
}

func TestIdentityService_OAuth_ConcurrentSignupRetriesAsLookup(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	profile := githubProfile()
	winnerUserID := uuid.New()

	// First attempt: nothing exists yet, but the insert loses a race with a
	// concurrent callback for the same identity.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOAuthRepo := mockRepo.NewMockOAuthAccountRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OAuthAccountRepo().Return(mockOAuthRepo)

			mockOAuthRepo.EXPECT().
				Find(ctx, entity.MethodGitHub, profile.ProviderUserID).
				Return(nil, repository.ErrOAuthAccountNotFound)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, profile.Email).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrDuplicateEmail)

			return fn(mockFactory)
		}).
		Once()

	// Retry: the winner's rows are visible now, so resolution is a lookup.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOAuthRepo := mockRepo.NewMockOAuthAccountRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OAuthAccountRepo().Return(mockOAuthRepo)

			mockOAuthRepo.EXPECT().
				Find(ctx, entity.MethodGitHub, profile.ProviderUserID).
				Return(&entity.OAuthAccount{
					Provider:       entity.MethodGitHub,
					ProviderUserID: profile.ProviderUserID,
					UserID:         winnerUserID,
				}, nil)

			return fn(mockFactory)
		}).
		Once()

	userID, err := fx.service.FindOrCreateForOAuth(ctx, &usecase.OAuthSignInInput{
		Provider: entity.MethodGitHub,
		Profile:  profile,
	})

	require.NoError(t, err)
	assert.Equal(t, winnerUserID, userID)
}
