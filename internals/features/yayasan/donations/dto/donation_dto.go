package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/yayasan/donations/model"
)

type CreateDonationRequest struct {
	DonationName    string  `json:"donation_name" validate:"required,min=2,max=50"`
	DonationEmail   *string `json:"donation_email" validate:"omitempty,email"`
	DonationAmount  int     `json:"donation_amount" validate:"required,gt=0"`
	DonationMessage *string `json:"donation_message" validate:"omitempty,max=500"`
}

func (r *CreateDonationRequest) Normalize() {
	r.DonationName = strings.TrimSpace(r.DonationName)
	if r.DonationMessage != nil {
		v := strings.TrimSpace(*r.DonationMessage)
		if v == "" {
			r.DonationMessage = nil
		} else {
			r.DonationMessage = &v
		}
	}
}

func (r CreateDonationRequest) ToModel(orderID string, userID *uuid.UUID) m.DonationModel {
	return m.DonationModel{
		DonationUserID:         userID,
		DonationName:           r.DonationName,
		DonationAmount:         r.DonationAmount,
		DonationMessage:        r.DonationMessage,
		DonationStatus:         m.DonationStatusPending,
		DonationOrderID:        orderID,
		DonationPaymentGateway: "midtrans",
	}
}

type DonationCreatedResponse struct {
	DonationID  uuid.UUID `json:"donation_id"`
	OrderID     string    `json:"order_id"`
	SnapToken   string    `json:"snap_token"`
	RedirectURL string    `json:"redirect_url"`
}

type DonationResponse struct {
	DonationID      uuid.UUID  `json:"donation_id"`
	DonationName    string     `json:"donation_name"`
	DonationAmount  int        `json:"donation_amount"`
	DonationMessage *string    `json:"donation_message,omitempty"`
	DonationStatus  string     `json:"donation_status"`
	DonationOrderID string     `json:"donation_order_id"`
	DonationPaidAt  *time.Time `json:"donation_paid_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func ToDonationResponse(d m.DonationModel) DonationResponse {
	return DonationResponse{
		DonationID:      d.DonationID,
		DonationName:    d.DonationName,
		DonationAmount:  d.DonationAmount,
		DonationMessage: d.DonationMessage,
		DonationStatus:  d.DonationStatus,
		DonationOrderID: d.DonationOrderID,
		DonationPaidAt:  d.DonationPaidAt,
		CreatedAt:       d.CreatedAt,
	}
}
