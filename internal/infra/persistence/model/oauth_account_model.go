package model

import (
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// OAuthAccountModel mirrors the 'oauth_accounts' table. The composite key is
// the provider identity; each upstream identity links to exactly one user.
type OAuthAccountModel struct {
	Provider       string    `gorm:"type:varchar(32);primaryKey"`
	ProviderUserID string    `gorm:"type:varchar(255);primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OAuthAccountModel) TableName() string {
	return "oauth_accounts"
}

// ToEntity converts the persistence model to a domain entity.
func (m *OAuthAccountModel) ToEntity() *entity.OAuthAccount {
	return &entity.OAuthAccount{
		Provider:       entity.AuthMethod(m.Provider),
		ProviderUserID: m.ProviderUserID,
		UserID:         m.UserID,
		CreatedAt:      m.CreatedAt,
	}
}

// OAuthAccountModelFromEntity converts a domain entity to its persistence model.
func OAuthAccountModelFromEntity(a *entity.OAuthAccount) *OAuthAccountModel {
	return &OAuthAccountModel{
		Provider:       a.Provider.String(),
		ProviderUserID: a.ProviderUserID,
		UserID:         a.UserID,
		CreatedAt:      a.CreatedAt,
	}
}
