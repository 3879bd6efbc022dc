package repository

import (
	"context"
	"time"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
)

// WorkRecordRepository define el puerto de persistencia para WorkRecord.
type WorkRecordRepository interface {
	Create(ctx context.Context, record *entity.WorkRecord) error
	GetByID(ctx context.Context, id string) (*entity.WorkRecord, error)
	// ListByStaff devuelve las últimas planillas del empleado, ordenadas por
	// start_date desc, created_at desc.
	ListByStaff(ctx context.Context, staffID string, limit int) ([]*entity.WorkRecord, error)
	Update(ctx context.Context, record *entity.WorkRecord) error
	// SoftDeleteByStaff marca todas las planillas del empleado (baja en cascada).
	SoftDeleteByStaff(ctx context.Context, staffID string, at time.Time) error
}
