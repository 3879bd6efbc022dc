package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
)

// ProjectFilter filtros de listado de proyectos. ClientID y Status son
// exactos; los rangos son inclusivos.
type ProjectFilter struct {
	ClientID     string
	Status       string
	WorkersMin   *int
	WorkersMax   *int
	AmountMin    *decimal.Decimal
	AmountMax    *decimal.Decimal
	DateInitFrom *time.Time
	DateInitTo   *time.Time
}

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	List(ctx context.Context, f ProjectFilter) ([]*entity.Project, error)
	ListPage(ctx context.Context, f ProjectFilter, limit, offset int) ([]*entity.Project, int, error)
	Update(ctx context.Context, project *entity.Project) error
	// UpdateTotals fija total_paid y deriva rest = amount - total_paid en una
	// sola escritura. No falla si el proyecto ya no existe (0 filas).
	UpdateTotals(ctx context.Context, id string, totalPaid decimal.Decimal) error
	// UpdateStatus persiste estado y snapshot de cotización como una unidad.
	// usdPrice nil deja la columna como está.
	UpdateStatus(ctx context.Context, id, status string, usdPrice json.RawMessage) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
