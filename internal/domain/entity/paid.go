package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Paid representa un pago registrado contra un proyecto.
// La suma de pagos activos de un proyecto nunca supera Project.Amount.
type Paid struct {
	ID        string
	Amount    decimal.Decimal
	Date      time.Time
	Bill      string // código de factura, opcional
	ProjectID string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
