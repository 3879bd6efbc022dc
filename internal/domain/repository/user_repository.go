package repository

import (
	"context"
	"time"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
)

// UserFilter filtros de listado de usuarios. Los campos de texto son
// búsqueda parcial case-insensitive; Role e IsActive son exactos.
type UserFilter struct {
	Email     string
	FirstName string
	LastName  string
	Role      string
	IsActive  *bool
}

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail devuelve el usuario aunque esté soft-deleted (login decide).
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByID devuelve solo usuarios activos (deleted_at IS NULL); nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context, f UserFilter) ([]*entity.User, error)
	ListPage(ctx context.Context, f UserFilter, limit, offset int) ([]*entity.User, int, error)
	Update(ctx context.Context, user *entity.User) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
