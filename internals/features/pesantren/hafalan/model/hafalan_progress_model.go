package model

import (
	"time"

	"github.com/google/uuid"
)

// HafalanProgressModel: ringkasan turunan, satu baris per santri.
// Tidak pernah ditulis user — selalu di-recompute penuh dari hafalan_records
// (bukan di-patch inkremental) supaya tidak drift. Bukan kind ber-tombstone.
type HafalanProgressModel struct {
	HafalanProgressSantriID uuid.UUID `gorm:"type:uuid;primaryKey;column:hafalan_progress_santri_id" json:"hafalan_progress_santri_id"`

	SurahMastered   int     `gorm:"not null;default:0;column:surah_mastered" json:"surah_mastered"`
	TotalAyat       int     `gorm:"not null;default:0;column:total_ayat" json:"total_ayat"`
	JuzTouched      int     `gorm:"not null;default:0;column:juz_touched" json:"juz_touched"`
	Juz30Progress   float64 `gorm:"type:numeric(5,2);not null;default:0;column:juz30_progress" json:"juz30_progress"`
	OverallProgress float64 `gorm:"type:numeric(5,2);not null;default:0;column:overall_progress" json:"overall_progress"`
	AvgQuality      float64 `gorm:"type:numeric(3,2);not null;default:0;column:avg_quality" json:"avg_quality"`
	TotalSessions   int     `gorm:"not null;default:0;column:total_sessions" json:"total_sessions"`

	LastSetoranAt *time.Time `gorm:"column:last_setoran_at" json:"last_setoran_at,omitempty"`

	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (HafalanProgressModel) TableName() string { return "hafalan_progress" }

func (HafalanProgressModel) Kind() string { return "hafalan_progress" }
