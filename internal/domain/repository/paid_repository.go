package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
)

// PaidFilter filtros de listado de pagos. ProjectID exacto, Bill parcial
// case-insensitive, montos y fechas son rangos inclusivos.
type PaidFilter struct {
	ProjectID string
	Bill      string
	AmountMin *decimal.Decimal
	AmountMax *decimal.Decimal
	DateFrom  *time.Time
	DateTo    *time.Time
}

// PaidRepository define el puerto de persistencia para Paid.
type PaidRepository interface {
	Create(ctx context.Context, paid *entity.Paid) error
	GetByID(ctx context.Context, id string) (*entity.Paid, error)
	List(ctx context.Context, f PaidFilter) ([]*entity.Paid, error)
	ListPage(ctx context.Context, f PaidFilter, limit, offset int) ([]*entity.Paid, int, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.Paid, error)
	// SumByProject suma los montos de pagos activos (no soft-deleted) del proyecto.
	SumByProject(ctx context.Context, projectID string) (decimal.Decimal, error)
	Update(ctx context.Context, paid *entity.Paid) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
