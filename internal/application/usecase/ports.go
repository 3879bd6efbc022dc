package usecase

import (
	"context"
	"encoding/json"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una transacción.
// Los casos de uso de pagos lo necesitan: validar saldo, escribir el pago
// y recalcular los totales del proyecto deben ser una unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		paidRepo repository.PaidRepository,
		projectRepo repository.ProjectRepository,
	) error) error
}

// RateProvider obtiene la cotización de referencia del dólar.
// El payload completo se snapshotea en el proyecto al activarlo.
type RateProvider interface {
	GetBlue(ctx context.Context) (json.RawMessage, error)
}

// Geolocator resuelve la ubicación aproximada de una IP. Nunca falla:
// devuelve un valor de respaldo ("Local"/"Unknown") ante cualquier problema.
type Geolocator interface {
	Lookup(ctx context.Context, ip string) string
}
