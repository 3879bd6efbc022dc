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

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación de StaffRepository (usable con pool o tx).
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

const staffColumns = `id, first_name, last_name, COALESCE(cuit, ''), COALESCE(dni, ''), category, created_at, updated_at, deleted_at`

func scanStaff(row pgx.Row) (*entity.Staff, error) {
	var s entity.Staff
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Cuit, &s.Dni, &s.Category,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo empleado. CUIT/DNI vacíos se guardan como NULL.
func (r *StaffRepo) Create(ctx context.Context, s *entity.Staff) error {
	query := `
		INSERT INTO staff (id, first_name, last_name, cuit, dni, category, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, s.ID, s.FirstName, s.LastName, s.Cuit, s.Dni, s.Category,
		s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado activo por ID; nil si no existe o fue eliminado.
func (r *StaffRepo) GetByID(ctx context.Context, id string) (*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1 AND deleted_at IS NULL`
	s, err := scanStaff(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return s, nil
}

func staffWhere(f repository.StaffFilter) *whereBuilder {
	w := newWhere()
	w.ilike("first_name", f.FirstName)
	w.ilike("last_name", f.LastName)
	w.ilike("cuit", f.Cuit)
	w.ilike("dni", f.Dni)
	return w
}

// List lista empleados activos filtrados, más recientes primero.
func (r *StaffRepo) List(ctx context.Context, f repository.StaffFilter) ([]*entity.Staff, error) {
	w := staffWhere(f)
	query := `SELECT ` + staffColumns + ` FROM staff ` + w.where() + ` ORDER BY created_at DESC`
	return r.queryStaff(ctx, query, w.args)
}

// ListPage lista empleados con paginación y devuelve el total filtrado.
func (r *StaffRepo) ListPage(ctx context.Context, f repository.StaffFilter, limit, offset int) ([]*entity.Staff, int, error) {
	w := staffWhere(f)
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM staff `+w.where(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count staff: %w", err)
	}
	query := fmt.Sprintf(`SELECT `+staffColumns+` FROM staff `+w.where()+
		` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, w.next(), w.next()+1)
	list, err := r.queryStaff(ctx, query, append(w.args, limit, offset))
	return list, total, err
}

func (r *StaffRepo) queryStaff(ctx context.Context, query string, args []any) ([]*entity.Staff, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	var list []*entity.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update actualiza los datos del empleado.
func (r *StaffRepo) Update(ctx context.Context, s *entity.Staff) error {
	query := `
		UPDATE staff
		SET first_name = $2, last_name = $3, cuit = NULLIF($4, ''), dni = NULLIF($5, ''),
			category = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, s.ID, s.FirstName, s.LastName, s.Cuit, s.Dni, s.Category, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

// SoftDelete marca el empleado como eliminado.
func (r *StaffRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE staff SET deleted_at = $2, updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete staff: %w", err)
	}
	return nil
}
