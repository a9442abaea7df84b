package impl

import (
	"context"
	"testing"
	"time"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	mockSvc "passport/internal/mocks/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// verificationServiceFixtures holds all test dependencies for verification service tests.
type verificationServiceFixtures struct {
	service   usecase.VerificationUsecase
	txManager *mockRepo.MockTransactionManager
	mailer    *mockSvc.MockMailSender
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	mailer := mockSvc.NewMockMailSender(t)

	service := NewVerificationService(txManager, mailer, newDiscardLogger())

	return verificationServiceFixtures{
		service:   service,
		txManager: txManager,
		mailer:    mailer,
	}
}

func TestVerificationService_Generate_ReplacesPreviousCode(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	var stored *entity.EmailVerificationCode

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockVerificationCodeRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)

			// The old code is removed in the same transaction that stores
			// the new one.
			mockCodeRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)
			mockCodeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.EmailVerificationCode")).
				Run(func(ctx context.Context, code *entity.EmailVerificationCode) {
					stored = code
				}).
				Return(nil)

			return fn(mockFactory)
		})

	code, err := fx.service.Generate(ctx, userID, "test@example.com")

	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "code %q must be numeric", code)
	}

	require.NotNil(t, stored)
	assert.Equal(t, code, stored.Code)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, "test@example.com", stored.Email)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), stored.ExpiresAt, time.Minute)
}

func TestVerificationService_Send_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()

	fx.mailer.EXPECT().
		Send(ctx, "test@example.com", "Your email verification code", mock.AnythingOfType("string")).
		Run(func(ctx context.Context, to, subject, htmlBody string) {
			assert.Contains(t, htmlBody, "123456")
		}).
		Return(nil)

	err := fx.service.Send(ctx, "test@example.com", "123456")

	assert.NoError(t, err)
}

func TestVerificationService_Send_DeliveryFailure(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()

	fx.mailer.EXPECT().
		Send(ctx, "test@example.com", "Your email verification code", mock.AnythingOfType("string")).
		Return(errors.New("smtp connection refused"))

	err := fx.service.Send(ctx, "test@example.com", "123456")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailSendFailed))
}

func TestVerificationService_Verify_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	record := &entity.EmailVerificationCode{
		UserID:    userID,
		Email:     "test@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	var updated *entity.User

	// Consuming the code and flipping the verified flag share one
	// transaction.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockVerificationCodeRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockCodeRepo.EXPECT().FindByUserID(ctx, userID).Return(record, nil)
			// A successful match consumes the code.
			mockCodeRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{
					ID:          userID,
					Email:       "test@example.com",
					AuthMethods: entity.AuthMethods{entity.MethodEmail},
				}, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					updated = user
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()

	err := fx.service.Verify(ctx, userID, "123456")

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.IsEmailVerified)
}

func TestVerificationService_Verify_UserUpdateFailureAbortsTransaction(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	record := &entity.EmailVerificationCode{
		UserID:    userID,
		Email:     "test@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	// The flag flip failing makes the shared transaction fail, so the code
	// consumption rolls back with it.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockVerificationCodeRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockCodeRepo.EXPECT().FindByUserID(ctx, userID).Return(record, nil)
			mockCodeRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: "test@example.com"}, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(errors.New("connection reset"))

			return fn(mockFactory)
		}).
		Once()

	err := fx.service.Verify(ctx, userID, "123456")

	assert.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrCodeNotFound))
}

func TestVerificationService_Verify_NoOutstandingCode(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockVerificationCodeRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockCodeRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCodeNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Verify(ctx, userID, "123456")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeNotFound))
}

func TestVerificationService_Verify_MismatchLeavesCodeInPlace(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	record := &entity.EmailVerificationCode{
		UserID:    userID,
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockVerificationCodeRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			// No DeleteByUserID expectation: a wrong guess must not consume
			// the code.
			mockCodeRepo.EXPECT().FindByUserID(ctx, userID).Return(record, nil)

			return fn(mockFactory)
		})

	err := fx.service.Verify(ctx, userID, "654321")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeMismatch))
}

func TestVerificationService_Verify_ExpiredCode(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	record := &entity.EmailVerificationCode{
		UserID:    userID,
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockVerificationCodeRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockCodeRepo.EXPECT().FindByUserID(ctx, userID).Return(record, nil)

			return fn(mockFactory)
		})

	err := fx.service.Verify(ctx, userID, "123456")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeExpired))
}

func TestVerificationService_Verify_MismatchReportedBeforeExpiry(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	// Expired AND wrong: the mismatch wins, the checks run in a fixed order.
	record := &entity.EmailVerificationCode{
		UserID:    userID,
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockVerificationCodeRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockCodeRepo.EXPECT().FindByUserID(ctx, userID).Return(record, nil)

			return fn(mockFactory)
		})

	err := fx.service.Verify(ctx, userID, "654321")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeMismatch))
}
