package repository

import (
	"context"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
)

// AuditLogRepository define el puerto de persistencia para AuditLog (solo escritura).
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
}
