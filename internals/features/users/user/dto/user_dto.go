package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/users/user/model"
)

/* =========================================================
   UPDATE PROFIL (PATCH /api/u/users/me)
   ========================================================= */

type UpdateUserRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &v
	}
}

func (r UpdateUserRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.UserName != nil && *r.UserName != "" {
		changes["user_name"] = *r.UserName
	}
	if r.Email != nil && *r.Email != "" {
		changes["email"] = *r.Email
	}
	return changes
}

/* =========================================================
   RESPONSE
   ========================================================= */

type UserResponse struct {
	UserID        uuid.UUID  `json:"user_id"`
	UserName      string     `json:"user_name"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	IsActive      bool       `json:"is_active"`
	DonationTotal int        `json:"donation_total"`
	CreatedAt     time.Time  `json:"created_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}

func ToUserResponse(u m.UserModel) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		UserName:      u.UserName,
		Email:         u.Email,
		Role:          u.Role,
		IsActive:      u.IsActive,
		DonationTotal: u.DonationTotal,
		CreatedAt:     u.CreatedAt,
		DeletedAt:     u.DeletedAt,
	}
}

func ToUserResponses(us []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, ToUserResponse(u))
	}
	return out
}
