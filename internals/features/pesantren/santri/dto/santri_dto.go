package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/pesantren/santri/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateSantriRequest struct {
	UserID *uuid.UUID `json:"santri_user_id"`

	NIS  string `json:"santri_nis" validate:"required,min=3,max=30"`
	Name string `json:"santri_name" validate:"required,min=2,max=100"`

	Gender    string     `json:"santri_gender" validate:"required,oneof=L P"`
	BirthDate *time.Time `json:"santri_birth_date"`

	GuardianName  *string `json:"santri_guardian_name" validate:"omitempty,max=100"`
	GuardianPhone *string `json:"santri_guardian_phone" validate:"omitempty,max=20"`

	Kelas *string `json:"santri_kelas" validate:"omitempty,max=40"`
}

func (r *CreateSantriRequest) Normalize() {
	r.NIS = strings.TrimSpace(r.NIS)
	r.Name = strings.TrimSpace(r.Name)
	r.Gender = strings.ToUpper(strings.TrimSpace(r.Gender))
	trimPtr(&r.GuardianName)
	trimPtr(&r.GuardianPhone)
	trimPtr(&r.Kelas)
}

func (r CreateSantriRequest) ToModel() m.SantriModel {
	return m.SantriModel{
		SantriUserID:        r.UserID,
		SantriNIS:           r.NIS,
		SantriName:          r.Name,
		SantriGender:        r.Gender,
		SantriBirthDate:     r.BirthDate,
		SantriGuardianName:  r.GuardianName,
		SantriGuardianPhone: r.GuardianPhone,
		SantriKelas:         r.Kelas,
		SantriIsActive:      true,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateSantriRequest struct {
	Name          *string `json:"santri_name" validate:"omitempty,min=2,max=100"`
	GuardianName  *string `json:"santri_guardian_name" validate:"omitempty,max=100"`
	GuardianPhone *string `json:"santri_guardian_phone" validate:"omitempty,max=20"`
	Kelas         *string `json:"santri_kelas" validate:"omitempty,max=40"`
	IsActive      *bool   `json:"santri_is_active"`
}

func (r *UpdateSantriRequest) Normalize() {
	trimPtr(&r.Name)
	trimPtr(&r.GuardianName)
	trimPtr(&r.GuardianPhone)
	trimPtr(&r.Kelas)
}

func (r UpdateSantriRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.Name != nil && *r.Name != "" {
		changes["santri_name"] = *r.Name
	}
	if r.GuardianName != nil {
		changes["santri_guardian_name"] = r.GuardianName
	}
	if r.GuardianPhone != nil {
		changes["santri_guardian_phone"] = r.GuardianPhone
	}
	if r.Kelas != nil {
		changes["santri_kelas"] = r.Kelas
	}
	if r.IsActive != nil {
		changes["santri_is_active"] = *r.IsActive
	}
	return changes
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
