package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "pesantrenku_backend/internals/features/pesantren/hafalan/model"
)

func TestCreateSetoranValidateRange(t *testing.T) {
	base := CreateSetoranRequest{Surah: 1, AyatStart: 1, AyatEnd: 7}
	assert.NoError(t, base.ValidateRange())

	// end < start
	bad := base
	bad.AyatStart = 5
	bad.AyatEnd = 3
	assert.Error(t, bad.ValidateRange())

	// melebihi panjang surah (Al-Fatihah 7 ayat)
	bad = base
	bad.AyatEnd = 8
	assert.Error(t, bad.ValidateRange())

	// surah tidak dikenal
	bad = base
	bad.Surah = 200
	assert.Error(t, bad.ValidateRange())
}

func TestUpdateSetoranValidateRangeAgainst(t *testing.T) {
	existing := m.HafalanRecordModel{
		HafalanRecordSurah:     1,
		HafalanRecordAyatStart: 1,
		HafalanRecordAyatEnd:   4,
	}

	// hanya geser end masih dalam batas
	end := 7
	assert.NoError(t, UpdateSetoranRequest{AyatEnd: &end}.ValidateRangeAgainst(existing))

	// end melewati panjang surah
	end = 8
	assert.Error(t, UpdateSetoranRequest{AyatEnd: &end}.ValidateRangeAgainst(existing))

	// start melewati end existing
	start := 5
	assert.Error(t, UpdateSetoranRequest{AyatStart: &start}.ValidateRangeAgainst(existing))
}

func TestCreateSetoranNormalize(t *testing.T) {
	note := "  bagus  "
	r := CreateSetoranRequest{Status: " mutqin ", Quality: " a ", Note: &note}
	r.Normalize()
	assert.Equal(t, "MUTQIN", r.Status)
	assert.Equal(t, "A", r.Quality)
	assert.Equal(t, "bagus", *r.Note)

	empty := "   "
	r = CreateSetoranRequest{Note: &empty}
	r.Normalize()
	assert.Nil(t, r.Note)
}
