package model

import (
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The email is the account key; a user
// may hold several credential mechanisms but only one row.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	Name            string    `gorm:"type:varchar(100)"`
	AvatarURL       string    `gorm:"type:varchar(512)"`
	PasswordHash    string    `gorm:"type:varchar(255)"`
	IsEmailVerified bool      `gorm:"not null;default:false"`
	AuthMethods     []string  `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	OAuthAccounts []OAuthAccountModel `gorm:"foreignKey:UserID"`
	Sessions      []SessionModel      `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the persistence model to a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:              m.ID,
		Email:           m.Email,
		Name:            m.Name,
		AvatarURL:       m.AvatarURL,
		PasswordHash:    m.PasswordHash,
		IsEmailVerified: m.IsEmailVerified,
		AuthMethods:     entity.AuthMethodsFromStrings(m.AuthMethods),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// UserModelFromEntity converts a domain entity to its persistence model.
func UserModelFromEntity(u *entity.User) *UserModel {
	return &UserModel{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		AvatarURL:       u.AvatarURL,
		PasswordHash:    u.PasswordHash,
		IsEmailVerified: u.IsEmailVerified,
		AuthMethods:     u.AuthMethods.ToStrings(),
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
