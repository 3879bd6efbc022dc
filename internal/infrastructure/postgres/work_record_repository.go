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

var _ repository.WorkRecordRepository = (*WorkRecordRepo)(nil)

// WorkRecordRepo implementación de WorkRecordRepository (usable con pool o tx).
type WorkRecordRepo struct {
	q Querier
}

// NewWorkRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkRecordRepository(q Querier) *WorkRecordRepo {
	return &WorkRecordRepo{q: q}
}

const workRecordColumns = `id, staff_id, value_per_hour, advance,
	hours_monday, hours_tuesday, hours_wednesday, hours_thursday, hours_friday,
	start_date, end_date, total, created_at, updated_at, deleted_at`

func scanWorkRecord(row pgx.Row) (*entity.WorkRecord, error) {
	var wr entity.WorkRecord
	err := row.Scan(&wr.ID, &wr.StaffID, &wr.ValuePerHour, &wr.Advance,
		&wr.HoursMonday, &wr.HoursTuesday, &wr.HoursWednesday, &wr.HoursThursday, &wr.HoursFriday,
		&wr.StartDate, &wr.EndDate, &wr.Total, &wr.CreatedAt, &wr.UpdatedAt, &wr.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &wr, nil
}

// Create persiste una nueva planilla de horas.
func (r *WorkRecordRepo) Create(ctx context.Context, wr *entity.WorkRecord) error {
	query := `
		INSERT INTO work_records (id, staff_id, value_per_hour, advance,
			hours_monday, hours_tuesday, hours_wednesday, hours_thursday, hours_friday,
			start_date, end_date, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query, wr.ID, wr.StaffID, wr.ValuePerHour, wr.Advance,
		wr.HoursMonday, wr.HoursTuesday, wr.HoursWednesday, wr.HoursThursday, wr.HoursFriday,
		wr.StartDate, wr.EndDate, wr.Total, wr.CreatedAt, wr.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert work record: %w", err)
	}
	return nil
}

// GetByID obtiene una planilla activa por ID; nil si no existe o fue eliminada.
func (r *WorkRecordRepo) GetByID(ctx context.Context, id string) (*entity.WorkRecord, error) {
	query := `SELECT ` + workRecordColumns + ` FROM work_records WHERE id = $1 AND deleted_at IS NULL`
	wr, err := scanWorkRecord(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work record: %w", err)
	}
	return wr, nil
}

// ListByStaff devuelve las últimas planillas del empleado (start_date desc, created_at desc).
func (r *WorkRecordRepo) ListByStaff(ctx context.Context, staffID string, limit int) ([]*entity.WorkRecord, error) {
	query := `SELECT ` + workRecordColumns + ` FROM work_records
		WHERE staff_id = $1 AND deleted_at IS NULL
		ORDER BY start_date DESC, created_at DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, staffID, limit)
	if err != nil {
		return nil, fmt.Errorf("list work records: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkRecord
	for rows.Next() {
		wr, err := scanWorkRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work record: %w", err)
		}
		list = append(list, wr)
	}
	return list, rows.Err()
}

// Update persiste la planilla completa (los merges parciales se hacen en el use case).
func (r *WorkRecordRepo) Update(ctx context.Context, wr *entity.WorkRecord) error {
	query := `
		UPDATE work_records
		SET value_per_hour = $2, advance = $3,
			hours_monday = $4, hours_tuesday = $5, hours_wednesday = $6,
			hours_thursday = $7, hours_friday = $8,
			start_date = $9, end_date = $10, total = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, wr.ID, wr.ValuePerHour, wr.Advance,
		wr.HoursMonday, wr.HoursTuesday, wr.HoursWednesday, wr.HoursThursday, wr.HoursFriday,
		wr.StartDate, wr.EndDate, wr.Total, wr.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update work record: %w", err)
	}
	return nil
}

// SoftDeleteByStaff marca todas las planillas del empleado (baja en cascada con el staff).
func (r *WorkRecordRepo) SoftDeleteByStaff(ctx context.Context, staffID string, at time.Time) error {
	query := `UPDATE work_records SET deleted_at = $2, updated_at = $2 WHERE staff_id = $1 AND deleted_at IS NULL`
	if _, err := r.q.Exec(ctx, query, staffID, at); err != nil {
		return fmt.Errorf("soft delete work records: %w", err)
	}
	return nil
}
