package model

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/lifecycle"
)

type UserModel struct {
	UserID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName string    `gorm:"type:varchar(50);not null;column:user_name" json:"user_name"`
	Email    string    `gorm:"type:varchar(255);not null;unique;column:email" json:"email"`
	Password string    `gorm:"type:varchar(250);not null;column:password" json:"-"`

	Role     string `gorm:"type:varchar(20);not null;default:'user';column:role" json:"role"`
	IsActive bool   `gorm:"not null;default:true;column:is_active" json:"is_active"`

	// Rollup donatur — diisi best-effort setelah donasi paid
	DonationTotal   int        `gorm:"not null;default:0;column:donation_total" json:"donation_total"`
	LastDonationAt  *time.Time `gorm:"column:last_donation_at" json:"last_donation_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	lifecycle.TombstoneFields
}

func (UserModel) TableName() string { return "users" }

func (UserModel) Kind() string { return "user" }
