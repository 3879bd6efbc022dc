package repository

import (
	"context"
	"time"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
)

// StaffFilter filtros de listado de personal (búsqueda parcial case-insensitive).
type StaffFilter struct {
	FirstName string
	LastName  string
	Cuit      string
	Dni       string
}

// StaffRepository define el puerto de persistencia para Staff.
type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	GetByID(ctx context.Context, id string) (*entity.Staff, error)
	List(ctx context.Context, f StaffFilter) ([]*entity.Staff, error)
	ListPage(ctx context.Context, f StaffFilter, limit, offset int) ([]*entity.Staff, int, error)
	Update(ctx context.Context, staff *entity.Staff) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
