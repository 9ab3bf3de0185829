package model

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/lifecycle"
)

const (
	DonationStatusPending  = "pending"
	DonationStatusPaid     = "paid"
	DonationStatusExpired  = "expired"
	DonationStatusCanceled = "canceled"
)

type DonationModel struct {
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_id"`

	// FK opsional: donasi anonim tidak punya user
	DonationUserID *uuid.UUID `gorm:"column:donation_user_id;type:uuid;index" json:"donation_user_id,omitempty"`

	DonationName    string  `gorm:"column:donation_name;type:varchar(50);not null" json:"donation_name"`
	DonationAmount  int     `gorm:"column:donation_amount;not null;check:donation_amount > 0" json:"donation_amount"`
	DonationMessage *string `gorm:"column:donation_message;type:text" json:"donation_message,omitempty"`

	DonationStatus  string `gorm:"column:donation_status;type:varchar(20);default:'pending'" json:"donation_status"`
	DonationOrderID string `gorm:"column:donation_order_id;type:varchar(100);not null;unique" json:"donation_order_id"`

	DonationPaymentToken   *string `gorm:"column:donation_payment_token;type:text" json:"donation_payment_token,omitempty"`
	DonationPaymentGateway string  `gorm:"column:donation_payment_gateway;type:varchar(50);default:'midtrans'" json:"donation_payment_gateway"`
	DonationPaymentMethod  *string `gorm:"column:donation_payment_method;type:varchar(50)" json:"donation_payment_method,omitempty"`

	DonationPaidAt *time.Time `gorm:"column:donation_paid_at" json:"donation_paid_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	lifecycle.TombstoneFields
}

func (DonationModel) TableName() string { return "donations" }

func (DonationModel) Kind() string { return "donation" }
