package model

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/lifecycle"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

type TransactionModel struct {
	TransactionID uuid.UUID `gorm:"column:transaction_id;type:uuid;default:gen_random_uuid();primaryKey" json:"transaction_id"`

	TransactionType     string    `gorm:"column:transaction_type;type:varchar(10);not null;index" json:"transaction_type"`
	TransactionCategory string    `gorm:"column:transaction_category;type:varchar(50);not null" json:"transaction_category"` // mis. spp, gaji, listrik
	TransactionAmount   int       `gorm:"column:transaction_amount;not null;check:transaction_amount > 0" json:"transaction_amount"`
	TransactionNote     *string   `gorm:"column:transaction_note;type:text" json:"transaction_note,omitempty"`
	TransactionDate     time.Time `gorm:"column:transaction_date;not null;index" json:"transaction_date"`

	TransactionRecordedBy *uuid.UUID `gorm:"column:transaction_recorded_by;type:uuid" json:"transaction_recorded_by,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	lifecycle.TombstoneFields
}

func (TransactionModel) TableName() string { return "transactions" }

func (TransactionModel) Kind() string { return "transaction" }
