package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/pesantren/attendance/model"
)

type CreateAttendanceRequest struct {
	SantriID uuid.UUID  `json:"attendance_record_santri_id" validate:"required"`
	Date     *time.Time `json:"attendance_record_date"`
	Status   string     `json:"attendance_record_status" validate:"required,oneof=HADIR SAKIT IZIN ALPHA"`
	Note     *string    `json:"attendance_record_note"`
}

func (r *CreateAttendanceRequest) Normalize() {
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	if r.Note != nil {
		v := strings.TrimSpace(*r.Note)
		if v == "" {
			r.Note = nil
		} else {
			r.Note = &v
		}
	}
}

func (r CreateAttendanceRequest) ToModel(teacherID *uuid.UUID) m.AttendanceRecordModel {
	date := time.Now()
	if r.Date != nil {
		date = *r.Date
	}
	return m.AttendanceRecordModel{
		AttendanceRecordSantriID:  r.SantriID,
		AttendanceRecordTeacherID: teacherID,
		AttendanceRecordDate:      date,
		AttendanceRecordStatus:    r.Status,
		AttendanceRecordNote:      r.Note,
	}
}

type UpdateAttendanceRequest struct {
	Status *string `json:"attendance_record_status" validate:"omitempty,oneof=HADIR SAKIT IZIN ALPHA"`
	Note   *string `json:"attendance_record_note"`
}

func (r *UpdateAttendanceRequest) Normalize() {
	if r.Status != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.Status))
		r.Status = &v
	}
}

func (r UpdateAttendanceRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.Status != nil {
		changes["attendance_record_status"] = *r.Status
	}
	if r.Note != nil {
		changes["attendance_record_note"] = r.Note
	}
	return changes
}
