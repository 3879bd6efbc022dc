package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, fullname, phone, COALESCE(cuit, ''), COALESCE(dni, ''), created_at, updated_at, deleted_at`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.Fullname, &c.Phone, &c.Cuit, &c.Dni, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente. CUIT/DNI vacíos se guardan como NULL.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (id, fullname, phone, cuit, dni, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Fullname, c.Phone, c.Cuit, c.Dni, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente activo por ID; nil si no existe o fue eliminado.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 AND deleted_at IS NULL`
	c, err := scanClient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func clientWhere(f repository.ClientFilter) *whereBuilder {
	w := newWhere()
	w.ilike("fullname", f.Fullname)
	w.ilike("phone", f.Phone)
	w.ilike("cuit", f.Cuit)
	w.ilike("dni", f.Dni)
	return w
}

// List lista clientes activos filtrados, más recientes primero.
func (r *ClientRepo) List(ctx context.Context, f repository.ClientFilter) ([]*entity.Client, error) {
	w := clientWhere(f)
	query := `SELECT ` + clientColumns + ` FROM clients ` + w.where() + ` ORDER BY created_at DESC`
	return r.queryClients(ctx, query, w.args)
}

// ListPage lista clientes con paginación y devuelve el total filtrado.
func (r *ClientRepo) ListPage(ctx context.Context, f repository.ClientFilter, limit, offset int) ([]*entity.Client, int, error) {
	w := clientWhere(f)
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clients `+w.where(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}
	query := fmt.Sprintf(`SELECT `+clientColumns+` FROM clients `+w.where()+
		` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, w.next(), w.next()+1)
	list, err := r.queryClients(ctx, query, append(w.args, limit, offset))
	return list, total, err
}

func (r *ClientRepo) queryClients(ctx context.Context, query string, args []any) ([]*entity.Client, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza los datos del cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients
		SET fullname = $2, phone = $3, cuit = NULLIF($4, ''), dni = NULLIF($5, ''), updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.Fullname, c.Phone, c.Cuit, c.Dni, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// SoftDelete marca el cliente como eliminado.
func (r *ClientRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE clients SET deleted_at = $2, updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete client: %w", err)
	}
	return nil
}
