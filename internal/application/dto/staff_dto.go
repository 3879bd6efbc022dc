package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
)

// CreateStaffRequest entrada para alta de empleado. Al menos uno de
// {cuit, dni} debe estar presente (se valida en use case).
type CreateStaffRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName" validate:"required,min=1,max=100"`
	Cuit      string `json:"cuit" validate:"omitempty,max=20"`
	Dni       string `json:"dni" validate:"omitempty,max=20"`
	Category  string `json:"category" validate:"omitempty,max=100"`
}

// UpdateStaffRequest actualización parcial de empleado.
type UpdateStaffRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Cuit      *string `json:"cuit" validate:"omitempty,max=20"`
	Dni       *string `json:"dni" validate:"omitempty,max=20"`
	Category  *string `json:"category" validate:"omitempty,max=100"`
}

// StaffFilterRequest filtros de listado de personal.
type StaffFilterRequest struct {
	FirstName string `query:"firstName"`
	LastName  string `query:"lastName"`
	Cuit      string `query:"cuit"`
	Dni       string `query:"dni"`
}

// StaffResponse salida de un empleado.
type StaffResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Cuit      string    `json:"cuit,omitempty"`
	Dni       string    `json:"dni,omitempty"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StaffResponseFrom mapea la entidad a su representación pública.
func StaffResponseFrom(s *entity.Staff) StaffResponse {
	return StaffResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Cuit:      s.Cuit,
		Dni:       s.Dni,
		Category:  s.Category,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// StaffListFrom mapea una lista de empleados.
func StaffListFrom(staff []*entity.Staff) []StaffResponse {
	out := make([]StaffResponse, 0, len(staff))
	for _, s := range staff {
		out = append(out, StaffResponseFrom(s))
	}
	return out
}

// CreateWorkRecordRequest planilla semanal de horas. startDate fija la
// semana; endDate se deriva (startDate + 4 días).
type CreateWorkRecordRequest struct {
	StaffID        string          `json:"staffId" validate:"required,uuid"`
	ValuePerHour   decimal.Decimal `json:"valuePerHour"`
	Advance        decimal.Decimal `json:"advance"`
	HoursMonday    float64         `json:"hoursMonday" validate:"min=0,max=24"`
	HoursTuesday   float64         `json:"hoursTuesday" validate:"min=0,max=24"`
	HoursWednesday float64         `json:"hoursWednesday" validate:"min=0,max=24"`
	HoursThursday  float64         `json:"hoursThursday" validate:"min=0,max=24"`
	HoursFriday    float64         `json:"hoursFriday" validate:"min=0,max=24"`
	StartDate      string          `json:"startDate" validate:"required"`
}

// UpdateWorkRecordRequest actualización parcial; el total se recalcula
// siempre a partir de los valores ya mergeados.
type UpdateWorkRecordRequest struct {
	ValuePerHour   *decimal.Decimal `json:"valuePerHour"`
	Advance        *decimal.Decimal `json:"advance"`
	HoursMonday    *float64         `json:"hoursMonday" validate:"omitempty,min=0,max=24"`
	HoursTuesday   *float64         `json:"hoursTuesday" validate:"omitempty,min=0,max=24"`
	HoursWednesday *float64         `json:"hoursWednesday" validate:"omitempty,min=0,max=24"`
	HoursThursday  *float64         `json:"hoursThursday" validate:"omitempty,min=0,max=24"`
	HoursFriday    *float64         `json:"hoursFriday" validate:"omitempty,min=0,max=24"`
	StartDate      *string          `json:"startDate"`
}

// WorkRecordResponse salida de una planilla de horas.
type WorkRecordResponse struct {
	ID             string          `json:"id"`
	StaffID        string          `json:"staffId"`
	ValuePerHour   decimal.Decimal `json:"valuePerHour"`
	Advance        decimal.Decimal `json:"advance"`
	HoursMonday    float64         `json:"hoursMonday"`
	HoursTuesday   float64         `json:"hoursTuesday"`
	HoursWednesday float64         `json:"hoursWednesday"`
	HoursThursday  float64         `json:"hoursThursday"`
	HoursFriday    float64         `json:"hoursFriday"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	Total          decimal.Decimal `json:"total"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// WorkRecordResponseFrom mapea la entidad a su representación pública.
func WorkRecordResponseFrom(w *entity.WorkRecord) WorkRecordResponse {
	return WorkRecordResponse{
		ID:             w.ID,
		StaffID:        w.StaffID,
		ValuePerHour:   w.ValuePerHour,
		Advance:        w.Advance,
		HoursMonday:    w.HoursMonday,
		HoursTuesday:   w.HoursTuesday,
		HoursWednesday: w.HoursWednesday,
		HoursThursday:  w.HoursThursday,
		HoursFriday:    w.HoursFriday,
		StartDate:      w.StartDate,
		EndDate:        w.EndDate,
		Total:          w.Total,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

// WorkRecordListFrom mapea una lista de planillas.
func WorkRecordListFrom(records []*entity.WorkRecord) []WorkRecordResponse {
	out := make([]WorkRecordResponse, 0, len(records))
	for _, w := range records {
		out = append(out, WorkRecordResponseFrom(w))
	}
	return out
}
