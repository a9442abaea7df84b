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

// oauthAccountRepository implements the domain.OAuthAccountRepository interface using GORM.
type oauthAccountRepository struct {
	db *gorm.DB
}

// NewOAuthAccountRepository is the constructor for oauthAccountRepository.
func NewOAuthAccountRepository(db *gorm.DB) repository.OAuthAccountRepository {
	return &oauthAccountRepository{db: db}
}

// Find retrieves a provider link by its composite identity.
func (repo *oauthAccountRepository) Find(ctx context.Context, provider entity.AuthMethod, providerUserID string) (*entity.OAuthAccount, error) {
	var accountM model.OAuthAccountModel

	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider.String(), providerUserID).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOAuthAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find oauth account")
	}

	return accountM.ToEntity(), nil
}

// Create persists a new provider link.
func (repo *oauthAccountRepository) Create(ctx context.Context, account *entity.OAuthAccount) error {
	accountM := model.OAuthAccountModelFromEntity(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// The composite primary key is the only unique index here.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOAuthAccount
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create oauth account")
	}

	account.CreatedAt = accountM.CreatedAt

	return nil
}

// ListByUserID retrieves all provider links held by a user.
func (repo *oauthAccountRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OAuthAccount, error) {
	var accountModels []*model.OAuthAccountModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&accountModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list oauth accounts")
	}

	accounts := make([]*entity.OAuthAccount, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, accountM.ToEntity())
	}

	return accounts, nil
}
