package model

import (
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// EmailVerificationCodeModel mirrors the 'email_verification_codes' table.
// The user ID is the primary key, so the schema itself enforces at most one
// live code per user.
type EmailVerificationCodeModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Code      string    `gorm:"type:varchar(8);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmailVerificationCodeModel) TableName() string {
	return "email_verification_codes"
}

// ToEntity converts the persistence model to a domain entity.
func (m *EmailVerificationCodeModel) ToEntity() *entity.EmailVerificationCode {
	return &entity.EmailVerificationCode{
		UserID:    m.UserID,
		Email:     m.Email,
		Code:      m.Code,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// VerificationCodeModelFromEntity converts a domain entity to its persistence model.
func VerificationCodeModelFromEntity(c *entity.EmailVerificationCode) *EmailVerificationCodeModel {
	return &EmailVerificationCodeModel{
		UserID:    c.UserID,
		Email:     c.Email,
		Code:      c.Code,
		ExpiresAt: c.ExpiresAt,
		CreatedAt: c.CreatedAt,
	}
}
