package postgres

import (
	"context"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// verificationCodeRepository implements the domain.VerificationCodeRepository interface using GORM.
type verificationCodeRepository struct {
	db *gorm.DB
}

// NewVerificationCodeRepository is the constructor for verificationCodeRepository.
func NewVerificationCodeRepository(db *gorm.DB) repository.VerificationCodeRepository {
	return &verificationCodeRepository{db: db}
}

// FindByUserID retrieves the user's outstanding code. The user ID is the
// table's primary key, so there is at most one.
func (repo *verificationCodeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.EmailVerificationCode, error) {
	var codeM model.EmailVerificationCodeModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&codeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification code")
	}

	return codeM.ToEntity(), nil
}

// Create persists a new verification code.
func (repo *verificationCodeRepository) Create(ctx context.Context, code *entity.EmailVerificationCode) error {
	codeM := model.VerificationCodeModelFromEntity(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification code")
	}

	code.CreatedAt = codeM.CreatedAt

	return nil
}

// DeleteByUserID removes the user's outstanding code, if any.
func (repo *verificationCodeRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.EmailVerificationCodeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete verification codes")
	}

	return nil
}
