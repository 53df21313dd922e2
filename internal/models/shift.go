package models

import "time"

// ShiftType - смена A/B/C
type ShiftType string

const (
	ShiftA ShiftType = "A"
	ShiftB ShiftType = "B"
	ShiftC ShiftType = "C"
)

// ShiftDay - назначение смены на календарный день, только для отображения
type ShiftDay struct {
	Date  time.Time `json:"date"`
	Shift ShiftType `json:"shift"`
}
