package model

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/lifecycle"
)

type GradeRecordModel struct {
	GradeRecordID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_record_id" json:"grade_record_id"`
	GradeRecordSantriID  uuid.UUID  `gorm:"type:uuid;not null;column:grade_record_santri_id;index" json:"grade_record_santri_id"`
	GradeRecordTeacherID *uuid.UUID `gorm:"type:uuid;column:grade_record_teacher_id" json:"grade_record_teacher_id,omitempty"`

	GradeRecordSubject  string  `gorm:"type:varchar(80);not null;column:grade_record_subject;index" json:"grade_record_subject"`
	GradeRecordTerm     string  `gorm:"type:varchar(20);not null;column:grade_record_term;index" json:"grade_record_term"` // mis. 2025-GANJIL
	GradeRecordScore    float64 `gorm:"type:numeric(5,2);not null;column:grade_record_score" json:"grade_record_score"`
	GradeRecordNote     *string `gorm:"type:text;column:grade_record_note" json:"grade_record_note,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	lifecycle.TombstoneFields
}

func (GradeRecordModel) TableName() string { return "grade_records" }

func (GradeRecordModel) Kind() string { return "grade_record" }
