package impl

import (
	"context"
	"testing"
	"time"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionLifetime = 30 * 24 * time.Hour

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service   usecase.SessionUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewSessionService(newTestConfig(testSessionLifetime), txManager, newDiscardLogger())

	return sessionServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestSessionService_Create_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Session")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Create(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotEmpty(t, output.Session.ID)
	assert.Equal(t, userID, output.Session.UserID)
	assert.WithinDuration(t, time.Now().Add(testSessionLifetime), output.Session.ExpiresAt, time.Minute)

	require.NotNil(t, output.Cookie)
	assert.Equal(t, output.Session.ID, output.Cookie.Value)
	assert.Equal(t, output.Session.ExpiresAt, output.Cookie.ExpiresAt)
	assert.False(t, output.Cookie.Clear)
}

func TestSessionService_Create_TokensAreUnique(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Session")).
				Return(nil)

			return fn(mockFactory)
		}).
		Times(2)

	first, err := fx.service.Create(ctx, uuid.New())
	require.NoError(t, err)
	second, err := fx.service.Create(ctx, uuid.New())
	require.NoError(t, err)

	assert.NotEqual(t, first.Session.ID, second.Session.ID)
}

func TestSessionService_Validate_EmptyToken(t *testing.T) {
	fx := createTestSessionService(t)

	output, err := fx.service.Validate(context.Background(), "")

	require.NoError(t, err)
	assert.Nil(t, output.User)
	assert.Nil(t, output.Session)
	require.NotNil(t, output.Cookie)
	assert.True(t, output.Cookie.Clear)
}

func TestSessionService_Validate_UnknownToken(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().
				FindByID(ctx, "missing-token").
				Return(nil, repository.ErrSessionNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Validate(ctx, "missing-token")

	require.NoError(t, err)
	assert.Nil(t, output.User)
	assert.Nil(t, output.Session)
	require.NotNil(t, output.Cookie)
	assert.True(t, output.Cookie.Clear)
}

func TestSessionService_Validate_ExpiredSessionIsDeleted(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	session := &entity.Session{
		ID:        "expired-token",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, session.ID).Return(session, nil)
			mockSessionRepo.EXPECT().Delete(ctx, session.ID).Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Validate(ctx, session.ID)

	require.NoError(t, err)
	assert.Nil(t, output.User)
	assert.Nil(t, output.Session)
	require.NotNil(t, output.Cookie)
	assert.True(t, output.Cookie.Clear)
}

func TestSessionService_Validate_ActiveSessionNotExtended(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	// More than a third of the lifetime remains, so no extension happens.
	session := &entity.Session{
		ID:        "active-token",
		UserID:    userID,
		ExpiresAt: time.Now().Add(testSessionLifetime - time.Hour),
	}
	user := &entity.User{ID: userID, Email: "test@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockSessionRepo.EXPECT().FindByID(ctx, session.ID).Return(session, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Validate(ctx, session.ID)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, session, output.Session)
	assert.Nil(t, output.Cookie)
}

func TestSessionService_Validate_ExtendsFreshSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	// Less than a third of the lifetime remains, so the session is pushed
	// back out to the full lifetime and the cookie is re-issued.
	session := &entity.Session{
		ID:        "fresh-token",
		UserID:    userID,
		ExpiresAt: time.Now().Add(testSessionLifetime/3 - time.Hour),
	}
	user := &entity.User{ID: userID, Email: "test@example.com"}

	var extendedTo time.Time

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockSessionRepo.EXPECT().FindByID(ctx, session.ID).Return(session, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			mockSessionRepo.EXPECT().
				UpdateExpiry(ctx, session.ID, mock.AnythingOfType("time.Time")).
				Run(func(ctx context.Context, id string, expiresAt time.Time) {
					extendedTo = expiresAt
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Validate(ctx, session.ID)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.WithinDuration(t, time.Now().Add(testSessionLifetime), extendedTo, time.Minute)

	require.NotNil(t, output.Cookie)
	assert.False(t, output.Cookie.Clear)
	assert.Equal(t, session.ID, output.Cookie.Value)
	assert.Equal(t, extendedTo, output.Cookie.ExpiresAt)
}

func TestSessionService_Validate_OrphanedSessionIsDeleted(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	session := &entity.Session{
		ID:        "orphan-token",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(testSessionLifetime),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockSessionRepo.EXPECT().FindByID(ctx, session.ID).Return(session, nil)
			mockUserRepo.EXPECT().FindByID(ctx, session.UserID).Return(nil, repository.ErrUserNotFound)
			mockSessionRepo.EXPECT().Delete(ctx, session.ID).Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Validate(ctx, session.ID)

	require.NoError(t, err)
	assert.Nil(t, output.User)
	require.NotNil(t, output.Cookie)
	assert.True(t, output.Cookie.Clear)
}

func TestSessionService_Invalidate_EmptyTokenIsNoop(t *testing.T) {
	fx := createTestSessionService(t)

	err := fx.service.Invalidate(context.Background(), "")

	assert.NoError(t, err)
}

func TestSessionService_Invalidate_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().Delete(ctx, "some-token").Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Invalidate(ctx, "some-token")

	assert.NoError(t, err)
}

func TestSessionService_InvalidateAll_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.InvalidateAll(ctx, userID)

	assert.NoError(t, err)
}

func TestSessionService_CleanupExpired_ReportsCount(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().
				DeleteExpired(ctx, mock.AnythingOfType("time.Time")).
				Return(3, nil)

			return fn(mockFactory)
		})

	deleted, err := fx.service.CleanupExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, deleted)
}
