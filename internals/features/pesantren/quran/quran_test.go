package quran

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotals(t *testing.T) {
	sum := 0
	for _, s := range AllSurahs() {
		sum += s.TotalAyat
	}
	assert.Equal(t, TotalAyat, sum, "jumlah ayat seluruh surah harus 6236")
}

func TestJuz30Total(t *testing.T) {
	sum := 0
	for _, s := range AllSurahs() {
		if s.Juz == 30 {
			sum += s.TotalAyat
		}
	}
	assert.Equal(t, Juz30Ayat, sum, "juz 30 harus 564 ayat")
}

func TestJuz30Boundary(t *testing.T) {
	// juz 30 = surah 78..114
	for _, s := range AllSurahs() {
		if s.Number >= 78 {
			assert.Equal(t, 30, s.Juz, "surah %d", s.Number)
		} else {
			assert.Less(t, s.Juz, 30, "surah %d", s.Number)
		}
	}
}

func TestGetSurah(t *testing.T) {
	s, ok := GetSurah(1)
	assert.True(t, ok)
	assert.Equal(t, "Al-Fatihah", s.Name)
	assert.Equal(t, 7, s.TotalAyat)

	s, ok = GetSurah(114)
	assert.True(t, ok)
	assert.Equal(t, "An-Nas", s.Name)
	assert.Equal(t, 6, s.TotalAyat)

	_, ok = GetSurah(0)
	assert.False(t, ok)
	_, ok = GetSurah(115)
	assert.False(t, ok)
}

func TestJuzMonotonic(t *testing.T) {
	prev := 1
	for _, s := range AllSurahs() {
		assert.GreaterOrEqual(t, s.Juz, prev, "surah %d", s.Number)
		assert.LessOrEqual(t, s.Juz, TotalJuz)
		prev = s.Juz
	}
}
