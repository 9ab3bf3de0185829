package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "pesantrenku_backend/internals/features/pesantren/attendance/model"
	"pesantrenku_backend/internals/lifecycle"
)

type Recap struct {
	TotalSessions   int
	HadirCount      int
	SakitCount      int
	IzinCount       int
	AlphaCount      int
	PresencePercent float64
}

// ComputeRecap: fungsi murni atas record non-tombstone satu santri.
// Nol record → semua nol (bukan NaN).
func ComputeRecap(records []m.AttendanceRecordModel) Recap {
	var r Recap
	r.TotalSessions = len(records)
	for _, rec := range records {
		switch rec.AttendanceRecordStatus {
		case m.StatusHadir:
			r.HadirCount++
		case m.StatusSakit:
			r.SakitCount++
		case m.StatusIzin:
			r.IzinCount++
		default:
			r.AlphaCount++
		}
	}
	if r.TotalSessions > 0 {
		r.PresencePercent = float64(r.HadirCount) / float64(r.TotalSessions) * 100
		if r.PresencePercent > 100 {
			r.PresencePercent = 100
		}
	}
	return r
}

// RecomputeSummary: muat ulang seluruh record lalu upsert rekap.
// Sinkron setelah tiap mutasi record absensi; idempotent.
func RecomputeSummary(db *gorm.DB, santriID uuid.UUID) (m.AttendanceSummaryModel, error) {
	repo := lifecycle.NewRepository[m.AttendanceRecordModel](db)

	var records []m.AttendanceRecordModel
	if err := repo.FindMany(lifecycle.Predicate{"attendance_record_santri_id": santriID}, &records); err != nil {
		return m.AttendanceSummaryModel{}, err
	}

	r := ComputeRecap(records)
	row := m.AttendanceSummaryModel{
		AttendanceSummarySantriID: santriID,
		TotalSessions:             r.TotalSessions,
		HadirCount:                r.HadirCount,
		SakitCount:                r.SakitCount,
		IzinCount:                 r.IzinCount,
		AlphaCount:                r.AlphaCount,
		PresencePercent:           r.PresencePercent,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attendance_summary_santri_id"}},
		UpdateAll: true,
	}).Create(&row).Error; err != nil {
		return m.AttendanceSummaryModel{}, err
	}
	return row, nil
}
