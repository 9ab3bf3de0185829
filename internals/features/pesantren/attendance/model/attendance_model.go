package model

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/lifecycle"
)

const (
	StatusHadir = "HADIR"
	StatusSakit = "SAKIT"
	StatusIzin  = "IZIN"
	StatusAlpha = "ALPHA"
)

type AttendanceRecordModel struct {
	AttendanceRecordID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`
	AttendanceRecordSantriID uuid.UUID  `gorm:"type:uuid;not null;column:attendance_record_santri_id;index:idx_attendance_santri_date,priority:1" json:"attendance_record_santri_id"`
	AttendanceRecordTeacherID *uuid.UUID `gorm:"type:uuid;column:attendance_record_teacher_id" json:"attendance_record_teacher_id,omitempty"`

	AttendanceRecordDate   time.Time `gorm:"type:date;not null;column:attendance_record_date;index:idx_attendance_santri_date,priority:2,sort:desc" json:"attendance_record_date"`
	AttendanceRecordStatus string    `gorm:"type:varchar(10);not null;column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordNote   *string   `gorm:"type:text;column:attendance_record_note" json:"attendance_record_note,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	lifecycle.TombstoneFields
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (AttendanceRecordModel) Kind() string { return "attendance_record" }

// AttendanceSummaryModel: rekap turunan per santri, selalu recompute penuh.
type AttendanceSummaryModel struct {
	AttendanceSummarySantriID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_summary_santri_id" json:"attendance_summary_santri_id"`

	TotalSessions  int     `gorm:"not null;default:0;column:total_sessions" json:"total_sessions"`
	HadirCount     int     `gorm:"not null;default:0;column:hadir_count" json:"hadir_count"`
	SakitCount     int     `gorm:"not null;default:0;column:sakit_count" json:"sakit_count"`
	IzinCount      int     `gorm:"not null;default:0;column:izin_count" json:"izin_count"`
	AlphaCount     int     `gorm:"not null;default:0;column:alpha_count" json:"alpha_count"`
	PresencePercent float64 `gorm:"type:numeric(5,2);not null;default:0;column:presence_percent" json:"presence_percent"`

	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AttendanceSummaryModel) TableName() string { return "attendance_summaries" }

func (AttendanceSummaryModel) Kind() string { return "attendance_summary" }
