package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklist menampung access token yang di-logout sebelum exp.
// Sengaja di LUAR allow-list soft-delete: baris kedaluwarsa dibersihkan
// fisik oleh scheduler.
type TokenBlacklist struct {
	TokenBlacklistID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:token_blacklist_id" json:"token_blacklist_id"`
	Token            string    `gorm:"type:text;not null;uniqueIndex;column:token" json:"token"`
	ExpiredAt        time.Time `gorm:"not null;column:expired_at;index" json:"expired_at"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }

func (TokenBlacklist) Kind() string { return "token_blacklist" }
