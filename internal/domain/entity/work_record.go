package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkRecord planilla semanal de horas de un empleado (lunes a viernes).
// Total = (Σ horas) × ValuePerHour − Advance; puede ser negativo si el
// adelanto supera lo trabajado (no se recorta).
// EndDate = StartDate + 4 días calendario.
type WorkRecord struct {
	ID             string
	StaffID        string
	ValuePerHour   decimal.Decimal
	Advance        decimal.Decimal
	HoursMonday    float64
	HoursTuesday   float64
	HoursWednesday float64
	HoursThursday  float64
	HoursFriday    float64
	StartDate      time.Time
	EndDate        time.Time
	Total          decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// TotalHours suma de horas de la semana.
func (w *WorkRecord) TotalHours() float64 {
	return w.HoursMonday + w.HoursTuesday + w.HoursWednesday + w.HoursThursday + w.HoursFriday
}

// ComputeTotal recalcula Total a partir de horas, valor hora y adelanto.
func (w *WorkRecord) ComputeTotal() {
	hours := decimal.NewFromFloat(w.TotalHours())
	w.Total = hours.Mul(w.ValuePerHour).Sub(w.Advance)
}
