package model

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/lifecycle"
)

type SantriModel struct {
	SantriID     uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:santri_id" json:"santri_id"`
	SantriUserID *uuid.UUID `gorm:"type:uuid;column:santri_user_id;index" json:"santri_user_id,omitempty"`

	SantriNIS  string `gorm:"type:varchar(30);not null;uniqueIndex;column:santri_nis" json:"santri_nis"`
	SantriName string `gorm:"type:varchar(100);not null;column:santri_name;index" json:"santri_name"`

	SantriGender    string     `gorm:"type:varchar(1);not null;column:santri_gender" json:"santri_gender"` // L / P
	SantriBirthDate *time.Time `gorm:"type:date;column:santri_birth_date" json:"santri_birth_date,omitempty"`

	SantriGuardianName  *string `gorm:"type:varchar(100);column:santri_guardian_name" json:"santri_guardian_name,omitempty"`
	SantriGuardianPhone *string `gorm:"type:varchar(20);column:santri_guardian_phone" json:"santri_guardian_phone,omitempty"`

	SantriKelas    *string `gorm:"type:varchar(40);column:santri_kelas;index" json:"santri_kelas,omitempty"`
	SantriIsActive bool    `gorm:"not null;default:true;column:santri_is_active" json:"santri_is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	lifecycle.TombstoneFields
}

func (SantriModel) TableName() string { return "santri" }

func (SantriModel) Kind() string { return "santri" }
