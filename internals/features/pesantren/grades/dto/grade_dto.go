package dto

import (
	"strings"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/pesantren/grades/model"
)

type CreateGradeRequest struct {
	SantriID uuid.UUID `json:"grade_record_santri_id" validate:"required"`
	Subject  string    `json:"grade_record_subject" validate:"required,min=2,max=80"`
	Term     string    `json:"grade_record_term" validate:"required,min=4,max=20"`
	Score    float64   `json:"grade_record_score" validate:"gte=0,lte=100"`
	Note     *string   `json:"grade_record_note"`
}

func (r *CreateGradeRequest) Normalize() {
	r.Subject = strings.TrimSpace(r.Subject)
	r.Term = strings.ToUpper(strings.TrimSpace(r.Term))
	if r.Note != nil {
		v := strings.TrimSpace(*r.Note)
		if v == "" {
			r.Note = nil
		} else {
			r.Note = &v
		}
	}
}

func (r CreateGradeRequest) ToModel(teacherID *uuid.UUID) m.GradeRecordModel {
	return m.GradeRecordModel{
		GradeRecordSantriID:  r.SantriID,
		GradeRecordTeacherID: teacherID,
		GradeRecordSubject:   r.Subject,
		GradeRecordTerm:      r.Term,
		GradeRecordScore:     r.Score,
		GradeRecordNote:      r.Note,
	}
}

type UpdateGradeRequest struct {
	Score *float64 `json:"grade_record_score" validate:"omitempty,gte=0,lte=100"`
	Note  *string  `json:"grade_record_note"`
}

func (r UpdateGradeRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.Score != nil {
		changes["grade_record_score"] = *r.Score
	}
	if r.Note != nil {
		changes["grade_record_note"] = r.Note
	}
	return changes
}

// SubjectAverage: baris rekap nilai per mapel
type SubjectAverage struct {
	Subject  string  `json:"subject"`
	AvgScore float64 `json:"avg_score"`
	Sessions int     `json:"sessions"`
}
