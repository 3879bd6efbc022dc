package repository

import (
	"context"
	"time"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
)

// ClientFilter filtros de listado de clientes (todos búsqueda parcial case-insensitive).
type ClientFilter struct {
	Fullname string
	Phone    string
	Cuit     string
	Dni      string
}

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context, f ClientFilter) ([]*entity.Client, error)
	ListPage(ctx context.Context, f ClientFilter, limit, offset int) ([]*entity.Client, int, error)
	Update(ctx context.Context, client *entity.Client) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
