package store

import (
	"time"

	"github.com/shenikar/zasahy_monitor/internal/models"
)

var shiftPattern = []models.ShiftType{models.ShiftA, models.ShiftB, models.ShiftC}

// GenerateShifts строит график A/B/C на весь месяц, которому принадлежит now.
// Первое число месяца всегда смена A.
func GenerateShifts(now time.Time) []models.ShiftDay {
	year, month, _ := now.Date()
	loc := now.Location()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()

	result := make([]models.ShiftDay, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		result = append(result, models.ShiftDay{
			Date:  time.Date(year, month, day, 0, 0, 0, 0, loc),
			Shift: shiftPattern[(day-1)%len(shiftPattern)],
		})
	}
	return result
}

// ShiftFor возвращает смену на конкретную дату из графика
func ShiftFor(shifts []models.ShiftDay, date time.Time) (models.ShiftType, bool) {
	y, m, d := date.Date()
	for _, sd := range shifts {
		sy, sm, sdd := sd.Date.Date()
		if sy == y && sm == m && sdd == d {
			return sd.Shift, true
		}
	}
	return "", false
}
