package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/repository"
)

var _ repository.PaidRepository = (*PaidRepo)(nil)

// PaidRepo implementación de PaidRepository (usable con pool o tx).
type PaidRepo struct {
	q Querier
}

// NewPaidRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaidRepository(q Querier) *PaidRepo {
	return &PaidRepo{q: q}
}

const paidColumns = `id, amount, date, COALESCE(bill, ''), project_id, created_at, updated_at, deleted_at`

func scanPaid(row pgx.Row) (*entity.Paid, error) {
	var p entity.Paid
	err := row.Scan(&p.ID, &p.Amount, &p.Date, &p.Bill, &p.ProjectID, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo pago.
func (r *PaidRepo) Create(ctx context.Context, p *entity.Paid) error {
	query := `
		INSERT INTO paids (id, amount, date, bill, project_id, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, p.ID, p.Amount, p.Date, p.Bill, p.ProjectID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert paid: %w", err)
	}
	return nil
}

// GetByID obtiene un pago activo por ID; nil si no existe o fue eliminado.
func (r *PaidRepo) GetByID(ctx context.Context, id string) (*entity.Paid, error) {
	query := `SELECT ` + paidColumns + ` FROM paids WHERE id = $1 AND deleted_at IS NULL`
	p, err := scanPaid(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paid: %w", err)
	}
	return p, nil
}

func paidWhere(f repository.PaidFilter) *whereBuilder {
	w := newWhere()
	if f.ProjectID != "" {
		w.add("project_id = $%d", f.ProjectID)
	}
	w.ilike("bill", f.Bill)
	if f.AmountMin != nil {
		w.add("amount >= $%d", *f.AmountMin)
	}
	if f.AmountMax != nil {
		w.add("amount <= $%d", *f.AmountMax)
	}
	if f.DateFrom != nil {
		w.add("date >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		w.add("date <= $%d", *f.DateTo)
	}
	return w
}

// List lista pagos activos filtrados, fecha más reciente primero.
func (r *PaidRepo) List(ctx context.Context, f repository.PaidFilter) ([]*entity.Paid, error) {
	w := paidWhere(f)
	query := `SELECT ` + paidColumns + ` FROM paids ` + w.where() + ` ORDER BY date DESC`
	return r.queryPaids(ctx, query, w.args)
}

// ListPage lista pagos con paginación y devuelve el total filtrado.
func (r *PaidRepo) ListPage(ctx context.Context, f repository.PaidFilter, limit, offset int) ([]*entity.Paid, int, error) {
	w := paidWhere(f)
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM paids `+w.where(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count paids: %w", err)
	}
	query := fmt.Sprintf(`SELECT `+paidColumns+` FROM paids `+w.where()+
		` ORDER BY date DESC LIMIT $%d OFFSET $%d`, w.next(), w.next()+1)
	list, err := r.queryPaids(ctx, query, append(w.args, limit, offset))
	return list, total, err
}

// ListByProject lista los pagos activos de un proyecto, fecha más reciente primero.
func (r *PaidRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.Paid, error) {
	query := `SELECT ` + paidColumns + ` FROM paids WHERE project_id = $1 AND deleted_at IS NULL ORDER BY date DESC`
	return r.queryPaids(ctx, query, []any{projectID})
}

// SumByProject suma los montos de los pagos activos del proyecto.
// Los pagos soft-deleted quedan fuera de la suma.
func (r *PaidRepo) SumByProject(ctx context.Context, projectID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM paids WHERE project_id = $1 AND deleted_at IS NULL`
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, projectID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum paids: %w", err)
	}
	return sum, nil
}

func (r *PaidRepo) queryPaids(ctx context.Context, query string, args []any) ([]*entity.Paid, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list paids: %w", err)
	}
	defer rows.Close()
	var list []*entity.Paid
	for rows.Next() {
		p, err := scanPaid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan paid: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza monto, fecha y factura del pago.
func (r *PaidRepo) Update(ctx context.Context, p *entity.Paid) error {
	query := `
		UPDATE paids SET amount = $2, date = $3, bill = NULLIF($4, ''), updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Amount, p.Date, p.Bill, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update paid: %w", err)
	}
	return nil
}

// SoftDelete marca el pago como eliminado (sale de la suma del ledger).
func (r *PaidRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE paids SET deleted_at = $2, updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete paid: %w", err)
	}
	return nil
}
