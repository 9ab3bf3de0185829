package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken menyimpan HASH refresh token (bukan token mentah).
type RefreshToken struct {
	RefreshTokenID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:refresh_token_id" json:"refresh_token_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Token          string    `gorm:"type:text;not null;uniqueIndex;column:token" json:"-"`
	ExpiresAt      time.Time `gorm:"not null;column:expires_at;index" json:"expires_at"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }

func (RefreshToken) Kind() string { return "refresh_token" }
