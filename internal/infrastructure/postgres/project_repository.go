package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación de ProjectRepository (usable con pool o tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectColumns = `id, amount, total_paid, rest, status, usd_price, client_id,
	COALESCE(location_address, ''), location_lat, location_lng, workers,
	date_init, date_end, created_at, updated_at, deleted_at`

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(&p.ID, &p.Amount, &p.TotalPaid, &p.Rest, &p.Status, &p.UsdPrice, &p.ClientID,
		&p.LocationAddress, &p.LocationLat, &p.LocationLng, &p.Workers,
		&p.DateInit, &p.DateEnd, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo proyecto con sus totales iniciales.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	query := `
		INSERT INTO projects (id, amount, total_paid, rest, status, client_id,
			location_address, location_lat, location_lng, workers, date_init, date_end,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query, p.ID, p.Amount, p.TotalPaid, p.Rest, p.Status, p.ClientID,
		p.LocationAddress, p.LocationLat, p.LocationLng, p.Workers, p.DateInit, p.DateEnd,
		p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto activo por ID; nil si no existe o fue eliminado.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND deleted_at IS NULL`
	p, err := scanProject(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func projectWhere(f repository.ProjectFilter) *whereBuilder {
	w := newWhere()
	if f.ClientID != "" {
		w.add("client_id = $%d", f.ClientID)
	}
	if f.Status != "" {
		w.add("status = $%d", f.Status)
	}
	if f.WorkersMin != nil {
		w.add("workers >= $%d", *f.WorkersMin)
	}
	if f.WorkersMax != nil {
		w.add("workers <= $%d", *f.WorkersMax)
	}
	if f.AmountMin != nil {
		w.add("amount >= $%d", *f.AmountMin)
	}
	if f.AmountMax != nil {
		w.add("amount <= $%d", *f.AmountMax)
	}
	if f.DateInitFrom != nil {
		w.add("date_init >= $%d", *f.DateInitFrom)
	}
	if f.DateInitTo != nil {
		w.add("date_init <= $%d", *f.DateInitTo)
	}
	return w
}

// List lista proyectos activos filtrados, más recientes primero.
func (r *ProjectRepo) List(ctx context.Context, f repository.ProjectFilter) ([]*entity.Project, error) {
	w := projectWhere(f)
	query := `SELECT ` + projectColumns + ` FROM projects ` + w.where() + ` ORDER BY created_at DESC`
	return r.queryProjects(ctx, query, w.args)
}

// ListPage lista proyectos con paginación y devuelve el total filtrado.
func (r *ProjectRepo) ListPage(ctx context.Context, f repository.ProjectFilter, limit, offset int) ([]*entity.Project, int, error) {
	w := projectWhere(f)
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM projects `+w.where(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}
	query := fmt.Sprintf(`SELECT `+projectColumns+` FROM projects `+w.where()+
		` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, w.next(), w.next()+1)
	list, err := r.queryProjects(ctx, query, append(w.args, limit, offset))
	return list, total, err
}

func (r *ProjectRepo) queryProjects(ctx context.Context, query string, args []any) ([]*entity.Project, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza los datos editables del proyecto (no toca status ni usd_price).
func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) error {
	query := `
		UPDATE projects
		SET amount = $2, rest = $3, client_id = $4, location_address = NULLIF($5, ''),
			location_lat = $6, location_lng = $7, workers = $8, date_init = $9, date_end = $10,
			updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Amount, p.Rest, p.ClientID, p.LocationAddress,
		p.LocationLat, p.LocationLng, p.Workers, p.DateInit, p.DateEnd, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// UpdateTotals fija total_paid y deriva rest en la misma sentencia.
// Si el proyecto ya no existe, 0 filas afectadas y sin error (recalculo best effort).
func (r *ProjectRepo) UpdateTotals(ctx context.Context, id string, totalPaid decimal.Decimal) error {
	query := `UPDATE projects SET total_paid = $2, rest = amount - $2, updated_at = NOW() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, totalPaid)
	if err != nil {
		return fmt.Errorf("update project totals: %w", err)
	}
	return nil
}

// UpdateStatus persiste estado y snapshot de cotización como una sola escritura.
func (r *ProjectRepo) UpdateStatus(ctx context.Context, id, status string, usdPrice json.RawMessage) error {
	if usdPrice != nil {
		query := `UPDATE projects SET status = $2, usd_price = $3, updated_at = NOW() WHERE id = $1`
		if _, err := r.q.Exec(ctx, query, id, status, usdPrice); err != nil {
			return fmt.Errorf("update project status: %w", err)
		}
		return nil
	}
	query := `UPDATE projects SET status = $2, updated_at = NOW() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id, status); err != nil {
		return fmt.Errorf("update project status: %w", err)
	}
	return nil
}

// SoftDelete marca el proyecto como eliminado.
func (r *ProjectRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE projects SET deleted_at = $2, updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete project: %w", err)
	}
	return nil
}
