package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "pesantrenku_backend/internals/features/pesantren/hafalan/model"
	"pesantrenku_backend/internals/features/pesantren/quran"
)

func record(surah, start, end int, status, quality string) m.HafalanRecordModel {
	return m.HafalanRecordModel{
		HafalanRecordSurah:     surah,
		HafalanRecordAyatStart: start,
		HafalanRecordAyatEnd:   end,
		HafalanRecordStatus:    status,
		HafalanRecordQuality:   quality,
	}
}

func TestComputeProgressZeroRecords(t *testing.T) {
	p, err := ComputeProgress(nil)
	assert.NoError(t, err)

	// semua field nol, bukan NaN/absent
	assert.Equal(t, 0, p.SurahMastered)
	assert.Equal(t, 0, p.TotalAyat)
	assert.Equal(t, 0, p.JuzTouched)
	assert.Equal(t, float64(0), p.Juz30Progress)
	assert.Equal(t, float64(0), p.OverallProgress)
	assert.Equal(t, float64(0), p.AvgQuality)
	assert.Equal(t, 0, p.TotalSessions)
}

func TestComputeProgressMasteryDetection(t *testing.T) {
	// Al-Fatihah (7 ayat): dua record MUTQIN 1–4 dan 5–7 → union 7 → tuntas
	records := []m.HafalanRecordModel{
		record(1, 1, 4, m.StatusMutqin, m.QualityA),
		record(1, 5, 7, m.StatusMutqin, m.QualityA),
	}
	p, err := ComputeProgress(records)
	assert.NoError(t, err)
	assert.Equal(t, 1, p.SurahMastered)
	assert.Equal(t, 7, p.TotalAyat)
}

func TestComputeProgressMasteryIncomplete(t *testing.T) {
	// celah di ayat 5 → belum tuntas
	records := []m.HafalanRecordModel{
		record(1, 1, 4, m.StatusMutqin, m.QualityA),
		record(1, 6, 7, m.StatusMutqin, m.QualityA),
	}
	p, err := ComputeProgress(records)
	assert.NoError(t, err)
	assert.Equal(t, 0, p.SurahMastered)
}

func TestComputeProgressMasteryNeedsMutqin(t *testing.T) {
	// LANCAR menutup seluruh surah tapi bukan MUTQIN → tidak dihitung tuntas
	records := []m.HafalanRecordModel{
		record(1, 1, 7, m.StatusLancar, m.QualityA),
	}
	p, err := ComputeProgress(records)
	assert.NoError(t, err)
	assert.Equal(t, 0, p.SurahMastered)
	// tapi total ayat tetap ikut dihitung (semua status)
	assert.Equal(t, 7, p.TotalAyat)
}

func TestComputeProgressQualityAveraging(t *testing.T) {
	records := []m.HafalanRecordModel{
		record(1, 1, 7, m.StatusLancar, m.QualityA),
		record(112, 1, 4, m.StatusLancar, m.QualityB),
		record(113, 1, 5, m.StatusSedangDihafal, m.QualityC),
	}
	p, err := ComputeProgress(records)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, p.AvgQuality) // (4+3+2)/3
}

func TestComputeProgressUnknownQualityDefaultsToTwo(t *testing.T) {
	records := []m.HafalanRecordModel{
		record(1, 1, 7, m.StatusLancar, "D"),
		record(1, 1, 7, m.StatusLancar, "X"),
	}
	p, err := ComputeProgress(records)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, p.AvgQuality)
}

func TestComputeProgressRawSumInflation(t *testing.T) {
	// kebijakan lama yang dipertahankan: setoran ulang range yang sama
	// menggelembungkan total (tanpa dedup), beda dengan union mastery
	records := []m.HafalanRecordModel{
		record(1, 1, 7, m.StatusMutqin, m.QualityA),
		record(1, 1, 7, m.StatusMutqin, m.QualityA),
	}
	p, err := ComputeProgress(records)
	assert.NoError(t, err)
	assert.Equal(t, 14, p.TotalAyat)   // 7+7 mentah
	assert.Equal(t, 1, p.SurahMastered) // union tetap 7 unik
}

func TestComputeProgressJuz30Cap(t *testing.T) {
	// An-Naba' (40 ayat, juz 30) disetor 20x = 800 ayat > 564 → persen capped 100
	var records []m.HafalanRecordModel
	for i := 0; i < 20; i++ {
		records = append(records, record(78, 1, 40, m.StatusLancar, m.QualityB))
	}
	p, err := ComputeProgress(records)
	assert.NoError(t, err)
	assert.Equal(t, 800, p.TotalAyat)
	assert.Equal(t, float64(100), p.Juz30Progress)
	assert.LessOrEqual(t, p.OverallProgress, float64(100))
}

func TestComputeProgressJuzTouched(t *testing.T) {
	records := []m.HafalanRecordModel{
		record(1, 1, 7, m.StatusLancar, m.QualityA),    // juz 1
		record(78, 1, 10, m.StatusLancar, m.QualityA),  // juz 30
		record(114, 1, 6, m.StatusLancar, m.QualityA),  // juz 30
	}
	p, err := ComputeProgress(records)
	assert.NoError(t, err)
	assert.Equal(t, 2, p.JuzTouched)
}

func TestComputeProgressPurity(t *testing.T) {
	records := []m.HafalanRecordModel{
		record(1, 1, 7, m.StatusMutqin, m.QualityA),
		record(78, 1, 40, m.StatusLancar, m.QualityB),
		record(2, 1, 100, m.StatusSedangDihafal, m.QualityC),
	}
	first, err := ComputeProgress(records)
	assert.NoError(t, err)
	second, err := ComputeProgress(records)
	assert.NoError(t, err)
	assert.Equal(t, first, second, "dua kali hitung tanpa perubahan input harus identik")
}

func TestComputeProgressUnknownSurah(t *testing.T) {
	records := []m.HafalanRecordModel{
		record(999, 1, 7, m.StatusLancar, m.QualityA),
	}
	_, err := ComputeProgress(records)
	assert.Error(t, err)
}

func TestComputeProgressOverallPercent(t *testing.T) {
	// Al-Baqarah penuh (286 ayat) → 286/6236
	records := []m.HafalanRecordModel{
		record(2, 1, 286, m.StatusMutqin, m.QualityA),
	}
	p, err := ComputeProgress(records)
	assert.NoError(t, err)
	assert.InDelta(t, float64(286)/float64(quran.TotalAyat)*100, p.OverallProgress, 1e-9)
	assert.Equal(t, 1, p.SurahMastered)
}
