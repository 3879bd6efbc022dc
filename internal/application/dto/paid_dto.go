package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
)

// CreatePaidRequest entrada para registrar un pago contra un proyecto.
type CreatePaidRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date" validate:"required"`
	Bill      string          `json:"bill" validate:"omitempty,max=100"`
	ProjectID string          `json:"projectId" validate:"required,uuid"`
}

// UpdatePaidRequest actualización parcial de un pago. El proyecto no se
// puede cambiar; un cambio de monto se valida contra el restante.
type UpdatePaidRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Date   *string          `json:"date"`
	Bill   *string          `json:"bill" validate:"omitempty,max=100"`
}

// PaidFilterRequest filtros de listado de pagos.
type PaidFilterRequest struct {
	ProjectID string           `query:"projectId" validate:"omitempty,uuid"`
	Bill      string           `query:"bill"`
	AmountMin *decimal.Decimal `query:"amountMin"`
	AmountMax *decimal.Decimal `query:"amountMax"`
	DateFrom  string           `query:"dateFrom"`
	DateTo    string           `query:"dateTo"`
}

// PaidResponse salida de un pago.
type PaidResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Bill      string          `json:"bill,omitempty"`
	ProjectID string          `json:"projectId"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// PaidResponseFrom mapea la entidad a su representación pública.
func PaidResponseFrom(p *entity.Paid) PaidResponse {
	return PaidResponse{
		ID:        p.ID,
		Amount:    p.Amount,
		Date:      p.Date,
		Bill:      p.Bill,
		ProjectID: p.ProjectID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PaidListFrom mapea una lista de pagos.
func PaidListFrom(paids []*entity.Paid) []PaidResponse {
	out := make([]PaidResponse, 0, len(paids))
	for _, p := range paids {
		out = append(out, PaidResponseFrom(p))
	}
	return out
}
