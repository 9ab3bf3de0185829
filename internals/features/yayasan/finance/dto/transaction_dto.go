package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/yayasan/finance/model"
)

type CreateTransactionRequest struct {
	Type     string    `json:"transaction_type" validate:"required,oneof=income expense"`
	Category string    `json:"transaction_category" validate:"required,min=2,max=50"`
	Amount   int       `json:"transaction_amount" validate:"required,gt=0"`
	Note     *string   `json:"transaction_note" validate:"omitempty,max=500"`
	Date     time.Time `json:"transaction_date" validate:"required"`
}

func (r *CreateTransactionRequest) Normalize() {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	if r.Note != nil {
		v := strings.TrimSpace(*r.Note)
		if v == "" {
			r.Note = nil
		} else {
			r.Note = &v
		}
	}
}

func (r CreateTransactionRequest) ToModel(recordedBy *uuid.UUID) m.TransactionModel {
	return m.TransactionModel{
		TransactionType:       r.Type,
		TransactionCategory:   r.Category,
		TransactionAmount:     r.Amount,
		TransactionNote:       r.Note,
		TransactionDate:       r.Date,
		TransactionRecordedBy: recordedBy,
	}
}

type UpdateTransactionRequest struct {
	Category *string    `json:"transaction_category" validate:"omitempty,min=2,max=50"`
	Amount   *int       `json:"transaction_amount" validate:"omitempty,gt=0"`
	Note     *string    `json:"transaction_note" validate:"omitempty,max=500"`
	Date     *time.Time `json:"transaction_date"`
}

func (r UpdateTransactionRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.Category != nil {
		changes["transaction_category"] = strings.ToLower(strings.TrimSpace(*r.Category))
	}
	if r.Amount != nil {
		changes["transaction_amount"] = *r.Amount
	}
	if r.Note != nil {
		changes["transaction_note"] = r.Note
	}
	if r.Date != nil {
		changes["transaction_date"] = *r.Date
	}
	return changes
}

// MonthlyReport: rollup kas per bulan (exclude tombstone)
type MonthlyReport struct {
	Month        string `json:"month"` // YYYY-MM
	TotalIncome  int64  `json:"total_income"`
	TotalExpense int64  `json:"total_expense"`
	Balance      int64  `json:"balance"`
	Entries      int64  `json:"entries"`
}
