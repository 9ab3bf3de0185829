package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "pesantrenku_backend/internals/features/pesantren/attendance/model"
)

func rec(status string) m.AttendanceRecordModel {
	return m.AttendanceRecordModel{AttendanceRecordStatus: status}
}

func TestComputeRecapZeroRecords(t *testing.T) {
	r := ComputeRecap(nil)
	assert.Equal(t, Recap{}, r)
	assert.Equal(t, float64(0), r.PresencePercent) // bukan NaN
}

func TestComputeRecapCounts(t *testing.T) {
	records := []m.AttendanceRecordModel{
		rec(m.StatusHadir), rec(m.StatusHadir), rec(m.StatusHadir),
		rec(m.StatusSakit),
		rec(m.StatusIzin),
		rec(m.StatusAlpha),
	}
	r := ComputeRecap(records)
	assert.Equal(t, 6, r.TotalSessions)
	assert.Equal(t, 3, r.HadirCount)
	assert.Equal(t, 1, r.SakitCount)
	assert.Equal(t, 1, r.IzinCount)
	assert.Equal(t, 1, r.AlphaCount)
	assert.Equal(t, 50.0, r.PresencePercent)
}

func TestComputeRecapUnknownStatusCountsAsAlpha(t *testing.T) {
	r := ComputeRecap([]m.AttendanceRecordModel{rec("???")})
	assert.Equal(t, 1, r.AlphaCount)
}

func TestComputeRecapPurity(t *testing.T) {
	records := []m.AttendanceRecordModel{rec(m.StatusHadir), rec(m.StatusAlpha)}
	assert.Equal(t, ComputeRecap(records), ComputeRecap(records))
}

func TestComputeRecapAllPresent(t *testing.T) {
	records := []m.AttendanceRecordModel{rec(m.StatusHadir), rec(m.StatusHadir)}
	r := ComputeRecap(records)
	assert.Equal(t, 100.0, r.PresencePercent)
}
