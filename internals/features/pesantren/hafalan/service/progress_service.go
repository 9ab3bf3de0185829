package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "pesantrenku_backend/internals/features/pesantren/hafalan/model"
	"pesantrenku_backend/internals/features/pesantren/quran"
	"pesantrenku_backend/internals/lifecycle"
)

// Progress: hasil hitung murni dari satu set record (tanpa jam dinding —
// timestamp last_setoran_at dibubuhkan saat persist).
type Progress struct {
	SurahMastered   int
	TotalAyat       int
	JuzTouched      int
	Juz30Progress   float64
	OverallProgress float64
	AvgQuality      float64
	TotalSessions   int
}

// ComputeProgress menghitung ulang ringkasan dari NOL atas seluruh record
// (non-tombstone) milik satu santri. Fungsi murni: input sama → output sama.
//
// Catatan kebijakan yang dipertahankan dari sistem lama: total_ayat adalah
// PENJUMLAHAN MENTAH panjang range semua record (setoran ulang atas range
// yang sama menggelembungkan total), sedangkan surah_mastered memakai UNION
// ayat yang dideduplikasi. Lihat DESIGN.md.
func ComputeProgress(records []m.HafalanRecordModel) (Progress, error) {
	var p Progress
	p.TotalSessions = len(records)
	if len(records) == 0 {
		return p, nil
	}

	ayatPerJuz := map[int]int{}
	mutqinAyat := map[int]map[int]struct{}{} // surah → set ayat MUTQIN
	qualitySum := 0

	for _, rec := range records {
		surah, ok := quran.GetSurah(rec.HafalanRecordSurah)
		if !ok {
			return Progress{}, fmt.Errorf("metadata surah %d tidak ditemukan", rec.HafalanRecordSurah)
		}

		// total mentah: semua status, tanpa dedup
		length := rec.AyatCount()
		p.TotalAyat += length
		ayatPerJuz[surah.Juz] += length

		qualitySum += qualityScore(rec.HafalanRecordQuality)

		if rec.HafalanRecordStatus == m.StatusMutqin {
			set, ok := mutqinAyat[surah.Number]
			if !ok {
				set = map[int]struct{}{}
				mutqinAyat[surah.Number] = set
			}
			for a := rec.HafalanRecordAyatStart; a <= rec.HafalanRecordAyatEnd; a++ {
				set[a] = struct{}{}
			}
		}
	}

	// surah tuntas: union ayat MUTQIN menutup seluruh surah
	for surahNumber, set := range mutqinAyat {
		surah, _ := quran.GetSurah(surahNumber)
		if len(set) == surah.TotalAyat {
			p.SurahMastered++
		}
	}

	p.JuzTouched = len(ayatPerJuz)
	p.Juz30Progress = capPercent(float64(ayatPerJuz[30]) / float64(quran.Juz30Ayat) * 100)
	p.OverallProgress = capPercent(float64(p.TotalAyat) / float64(quran.TotalAyat) * 100)
	p.AvgQuality = float64(qualitySum) / float64(len(records))

	return p, nil
}

// qualityScore: A→4, B→3, C→2, selain itu 2 (kebijakan sistem lama).
func qualityScore(quality string) int {
	switch quality {
	case m.QualityA:
		return 4
	case m.QualityB:
		return 3
	case m.QualityC:
		return 2
	default:
		return 2
	}
}

func capPercent(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}

// RecomputeProgress memuat record non-tombstone milik santri, menghitung
// ulang, lalu upsert baris ringkasan. Dipanggil sinkron setelah SETIAP
// create/update/tombstone record hafalan; idempotent, aman di-retry.
// Santri tanpa record tetap dapat baris serba nol.
func RecomputeProgress(db *gorm.DB, santriID uuid.UUID) (m.HafalanProgressModel, error) {
	repo := lifecycle.NewRepository[m.HafalanRecordModel](db)

	var records []m.HafalanRecordModel
	if err := repo.FindMany(lifecycle.Predicate{"hafalan_record_santri_id": santriID}, &records); err != nil {
		return m.HafalanProgressModel{}, err
	}

	p, err := ComputeProgress(records)
	if err != nil {
		return m.HafalanProgressModel{}, err
	}

	now := time.Now()
	row := m.HafalanProgressModel{
		HafalanProgressSantriID: santriID,
		SurahMastered:           p.SurahMastered,
		TotalAyat:               p.TotalAyat,
		JuzTouched:              p.JuzTouched,
		Juz30Progress:           p.Juz30Progress,
		OverallProgress:         p.OverallProgress,
		AvgQuality:              p.AvgQuality,
		TotalSessions:           p.TotalSessions,
		LastSetoranAt:           &now,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hafalan_progress_santri_id"}},
		UpdateAll: true,
	}).Create(&row).Error; err != nil {
		return m.HafalanProgressModel{}, err
	}
	return row, nil
}
