package model

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/lifecycle"
)

/* ===================== Constants ===================== */

const (
	StatusBelumDihafal  = "BELUM_DIHAFAL"
	StatusSedangDihafal = "SEDANG_DIHAFAL"
	StatusLancar        = "LANCAR"
	StatusMutqin        = "MUTQIN"
)

const (
	QualityA = "A"
	QualityB = "B"
	QualityC = "C"
	QualityD = "D"
)

/* ===================== Model ===================== */

// HafalanRecordModel: satu setoran hafalan (append-only; koreksi lewat
// update status/nilai, penghapusan lewat tombstone).
type HafalanRecordModel struct {
	HafalanRecordID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:hafalan_record_id" json:"hafalan_record_id"`
	HafalanRecordSantriID  uuid.UUID  `gorm:"type:uuid;not null;column:hafalan_record_santri_id;index:idx_hafalan_santri_date,priority:1" json:"hafalan_record_santri_id"`
	HafalanRecordTeacherID *uuid.UUID `gorm:"type:uuid;column:hafalan_record_teacher_id;index" json:"hafalan_record_teacher_id,omitempty"`

	HafalanRecordSurah     int `gorm:"not null;column:hafalan_record_surah" json:"hafalan_record_surah"`
	HafalanRecordAyatStart int `gorm:"not null;column:hafalan_record_ayat_start" json:"hafalan_record_ayat_start"`
	HafalanRecordAyatEnd   int `gorm:"not null;column:hafalan_record_ayat_end" json:"hafalan_record_ayat_end"`

	HafalanRecordStatus  string  `gorm:"type:varchar(20);not null;default:'BELUM_DIHAFAL';column:hafalan_record_status" json:"hafalan_record_status"`
	HafalanRecordQuality string  `gorm:"type:varchar(1);not null;default:'C';column:hafalan_record_quality" json:"hafalan_record_quality"`
	HafalanRecordNote    *string `gorm:"type:text;column:hafalan_record_note" json:"hafalan_record_note,omitempty"`

	HafalanRecordDate time.Time `gorm:"type:date;not null;column:hafalan_record_date;index:idx_hafalan_santri_date,priority:2,sort:desc" json:"hafalan_record_date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	lifecycle.TombstoneFields
}

func (HafalanRecordModel) TableName() string { return "hafalan_records" }

func (HafalanRecordModel) Kind() string { return "hafalan_record" }

// AyatCount: panjang range setoran ini (inklusif dua sisi).
func (h HafalanRecordModel) AyatCount() int {
	return h.HafalanRecordAyatEnd - h.HafalanRecordAyatStart + 1
}
