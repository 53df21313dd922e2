package store

import (
	"testing"
	"time"

	"github.com/shenikar/zasahy_monitor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShifts_CoversMonthInRotation(t *testing.T) {
	shifts := GenerateShifts(time.Date(2024, time.February, 17, 9, 0, 0, 0, time.UTC))

	require.Len(t, shifts, 29)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), shifts[0].Date)
	assert.Equal(t, models.ShiftA, shifts[0].Shift)
	assert.Equal(t, models.ShiftB, shifts[1].Shift)
	assert.Equal(t, models.ShiftC, shifts[2].Shift)
	assert.Equal(t, models.ShiftA, shifts[3].Shift)
	assert.Equal(t, models.ShiftB, shifts[28].Shift)
}

func TestShiftFor(t *testing.T) {
	shifts := GenerateShifts(testNow)

	shift, ok := ShiftFor(shifts, testNow)
	require.True(t, ok)
	// 24-е число: (24-1) % 3 = 2
	assert.Equal(t, models.ShiftC, shift)

	_, ok = ShiftFor(shifts, testNow.AddDate(0, 1, 0))
	assert.False(t, ok)
}

func TestRefreshShifts(t *testing.T) {
	s := newTestStore(t, nil)

	s.RefreshShifts(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	shifts := s.Shifts()
	require.Len(t, shifts, 30)
	assert.Equal(t, time.June, shifts[0].Date.Month())
}
