package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/pesantren/hafalan/model"
	"pesantrenku_backend/internals/features/pesantren/quran"
)

/* =========================================================
   CREATE SETORAN
   ========================================================= */

type CreateSetoranRequest struct {
	SantriID uuid.UUID `json:"hafalan_record_santri_id" validate:"required"`

	Surah     int `json:"hafalan_record_surah" validate:"required,min=1,max=114"`
	AyatStart int `json:"hafalan_record_ayat_start" validate:"required,min=1"`
	AyatEnd   int `json:"hafalan_record_ayat_end" validate:"required,min=1"`

	Status  string  `json:"hafalan_record_status" validate:"required,oneof=BELUM_DIHAFAL SEDANG_DIHAFAL LANCAR MUTQIN"`
	Quality string  `json:"hafalan_record_quality" validate:"required,oneof=A B C D"`
	Note    *string `json:"hafalan_record_note"`

	Date *time.Time `json:"hafalan_record_date"`
}

func (r *CreateSetoranRequest) Normalize() {
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	r.Quality = strings.ToUpper(strings.TrimSpace(r.Quality))
	if r.Note != nil {
		v := strings.TrimSpace(*r.Note)
		if v == "" {
			r.Note = nil
		} else {
			r.Note = &v
		}
	}
}

// ValidateRange: cek range ayat terhadap metadata surah.
// Dijalankan SEBELUM tombstone/recompute apa pun berjalan.
func (r CreateSetoranRequest) ValidateRange() error {
	surah, ok := quran.GetSurah(r.Surah)
	if !ok {
		return fmt.Errorf("surah %d tidak dikenal", r.Surah)
	}
	if r.AyatEnd < r.AyatStart {
		return errors.New("ayat akhir tidak boleh lebih kecil dari ayat awal")
	}
	if r.AyatEnd > surah.TotalAyat {
		return fmt.Errorf("surah %s hanya %d ayat", surah.Name, surah.TotalAyat)
	}
	return nil
}

func (r CreateSetoranRequest) ToModel(teacherID *uuid.UUID) m.HafalanRecordModel {
	date := time.Now()
	if r.Date != nil {
		date = *r.Date
	}
	return m.HafalanRecordModel{
		HafalanRecordSantriID:  r.SantriID,
		HafalanRecordTeacherID: teacherID,
		HafalanRecordSurah:     r.Surah,
		HafalanRecordAyatStart: r.AyatStart,
		HafalanRecordAyatEnd:   r.AyatEnd,
		HafalanRecordStatus:    r.Status,
		HafalanRecordQuality:   r.Quality,
		HafalanRecordNote:      r.Note,
		HafalanRecordDate:      date,
	}
}

/* =========================================================
   UPDATE SETORAN (partial)
   ========================================================= */

type UpdateSetoranRequest struct {
	Status  *string `json:"hafalan_record_status" validate:"omitempty,oneof=BELUM_DIHAFAL SEDANG_DIHAFAL LANCAR MUTQIN"`
	Quality *string `json:"hafalan_record_quality" validate:"omitempty,oneof=A B C D"`
	Note    *string `json:"hafalan_record_note"`

	AyatStart *int `json:"hafalan_record_ayat_start" validate:"omitempty,min=1"`
	AyatEnd   *int `json:"hafalan_record_ayat_end" validate:"omitempty,min=1"`
}

func (r *UpdateSetoranRequest) Normalize() {
	if r.Status != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.Status))
		r.Status = &v
	}
	if r.Quality != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.Quality))
		r.Quality = &v
	}
}

// ValidateRangeAgainst: validasi range hasil merge request + record existing.
func (r UpdateSetoranRequest) ValidateRangeAgainst(existing m.HafalanRecordModel) error {
	start := existing.HafalanRecordAyatStart
	end := existing.HafalanRecordAyatEnd
	if r.AyatStart != nil {
		start = *r.AyatStart
	}
	if r.AyatEnd != nil {
		end = *r.AyatEnd
	}
	surah, ok := quran.GetSurah(existing.HafalanRecordSurah)
	if !ok {
		return fmt.Errorf("surah %d tidak dikenal", existing.HafalanRecordSurah)
	}
	if end < start {
		return errors.New("ayat akhir tidak boleh lebih kecil dari ayat awal")
	}
	if end > surah.TotalAyat {
		return fmt.Errorf("surah %s hanya %d ayat", surah.Name, surah.TotalAyat)
	}
	return nil
}

func (r UpdateSetoranRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.Status != nil {
		changes["hafalan_record_status"] = *r.Status
	}
	if r.Quality != nil {
		changes["hafalan_record_quality"] = *r.Quality
	}
	if r.Note != nil {
		changes["hafalan_record_note"] = r.Note
	}
	if r.AyatStart != nil {
		changes["hafalan_record_ayat_start"] = *r.AyatStart
	}
	if r.AyatEnd != nil {
		changes["hafalan_record_ayat_end"] = *r.AyatEnd
	}
	return changes
}
