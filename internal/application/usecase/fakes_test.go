package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Replican la semántica
// relevante de los adaptadores reales: GetByID no devuelve soft-deleted,
// SumByProject ignora pagos dados de baja, UpdateTotals es best-effort.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*entity.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok || c.DeletedAt != nil {
		return nil, nil
	}
	return c, nil
}

func (r *fakeClientRepo) List(_ context.Context, _ repository.ClientFilter) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) ListPage(ctx context.Context, f repository.ClientFilter, _, _ int) ([]*entity.Client, int, error) {
	list, _ := r.List(ctx, f)
	return list, len(list), nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	if c, ok := r.clients[id]; ok {
		c.DeletedAt = &at
	}
	return nil
}

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*entity.Project)}
}

func (r *fakeProjectRepo) Create(_ context.Context, p *entity.Project) error {
	r.projects[p.ID] = p
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id string) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProjectRepo) List(_ context.Context, _ repository.ProjectFilter) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.projects {
		if p.DeletedAt == nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) ListPage(ctx context.Context, f repository.ProjectFilter, _, _ int) ([]*entity.Project, int, error) {
	list, _ := r.List(ctx, f)
	return list, len(list), nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *entity.Project) error {
	r.projects[p.ID] = p
	return nil
}

func (r *fakeProjectRepo) UpdateTotals(_ context.Context, id string, totalPaid decimal.Decimal) error {
	p, ok := r.projects[id]
	if !ok || p.DeletedAt != nil {
		return nil // best-effort, igual que el adaptador real
	}
	p.TotalPaid = totalPaid
	p.Rest = p.Amount.Sub(totalPaid)
	return nil
}

func (r *fakeProjectRepo) UpdateStatus(_ context.Context, id, status string, usdPrice json.RawMessage) error {
	p, ok := r.projects[id]
	if !ok || p.DeletedAt != nil {
		return nil
	}
	p.Status = status
	if usdPrice != nil {
		p.UsdPrice = usdPrice
	}
	return nil
}

func (r *fakeProjectRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	if p, ok := r.projects[id]; ok {
		p.DeletedAt = &at
	}
	return nil
}

type fakePaidRepo struct {
	paids map[string]*entity.Paid
}

func newFakePaidRepo() *fakePaidRepo {
	return &fakePaidRepo{paids: make(map[string]*entity.Paid)}
}

func (r *fakePaidRepo) Create(_ context.Context, p *entity.Paid) error {
	r.paids[p.ID] = p
	return nil
}

func (r *fakePaidRepo) GetByID(_ context.Context, id string) (*entity.Paid, error) {
	p, ok := r.paids[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	return p, nil
}

func (r *fakePaidRepo) List(_ context.Context, _ repository.PaidFilter) ([]*entity.Paid, error) {
	var out []*entity.Paid
	for _, p := range r.paids {
		if p.DeletedAt == nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaidRepo) ListPage(ctx context.Context, f repository.PaidFilter, _, _ int) ([]*entity.Paid, int, error) {
	list, _ := r.List(ctx, f)
	return list, len(list), nil
}

func (r *fakePaidRepo) ListByProject(_ context.Context, projectID string) ([]*entity.Paid, error) {
	var out []*entity.Paid
	for _, p := range r.paids {
		if p.DeletedAt == nil && p.ProjectID == projectID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaidRepo) SumByProject(_ context.Context, projectID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range r.paids {
		if p.DeletedAt == nil && p.ProjectID == projectID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

func (r *fakePaidRepo) Update(_ context.Context, p *entity.Paid) error {
	r.paids[p.ID] = p
	return nil
}

func (r *fakePaidRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	if p, ok := r.paids[id]; ok {
		p.DeletedAt = &at
	}
	return nil
}

type fakeStaffRepo struct {
	staff map[string]*entity.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: make(map[string]*entity.Staff)}
}

func (r *fakeStaffRepo) Create(_ context.Context, s *entity.Staff) error {
	r.staff[s.ID] = s
	return nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id string) (*entity.Staff, error) {
	s, ok := r.staff[id]
	if !ok || s.DeletedAt != nil {
		return nil, nil
	}
	return s, nil
}

func (r *fakeStaffRepo) List(_ context.Context, _ repository.StaffFilter) ([]*entity.Staff, error) {
	var out []*entity.Staff
	for _, s := range r.staff {
		if s.DeletedAt == nil {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStaffRepo) ListPage(ctx context.Context, f repository.StaffFilter, _, _ int) ([]*entity.Staff, int, error) {
	list, _ := r.List(ctx, f)
	return list, len(list), nil
}

func (r *fakeStaffRepo) Update(_ context.Context, s *entity.Staff) error {
	r.staff[s.ID] = s
	return nil
}

func (r *fakeStaffRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	if s, ok := r.staff[id]; ok {
		s.DeletedAt = &at
	}
	return nil
}

type fakeWorkRecordRepo struct {
	records map[string]*entity.WorkRecord
}

func newFakeWorkRecordRepo() *fakeWorkRecordRepo {
	return &fakeWorkRecordRepo{records: make(map[string]*entity.WorkRecord)}
}

func (r *fakeWorkRecordRepo) Create(_ context.Context, wr *entity.WorkRecord) error {
	r.records[wr.ID] = wr
	return nil
}

func (r *fakeWorkRecordRepo) GetByID(_ context.Context, id string) (*entity.WorkRecord, error) {
	wr, ok := r.records[id]
	if !ok || wr.DeletedAt != nil {
		return nil, nil
	}
	return wr, nil
}

func (r *fakeWorkRecordRepo) ListByStaff(_ context.Context, staffID string, limit int) ([]*entity.WorkRecord, error) {
	var out []*entity.WorkRecord
	for _, wr := range r.records {
		if wr.DeletedAt == nil && wr.StaffID == staffID {
			out = append(out, wr)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeWorkRecordRepo) Update(_ context.Context, wr *entity.WorkRecord) error {
	r.records[wr.ID] = wr
	return nil
}

func (r *fakeWorkRecordRepo) SoftDeleteByStaff(_ context.Context, staffID string, at time.Time) error {
	for _, wr := range r.records {
		if wr.StaffID == staffID && wr.DeletedAt == nil {
			wr.DeletedAt = &at
		}
	}
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes; no hay
// transacción real pero se preserva el contrato del puerto.
type fakeTxRunner struct {
	paids    repository.PaidRepository
	projects repository.ProjectRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	paidRepo repository.PaidRepository,
	projectRepo repository.ProjectRepository,
) error) error {
	return fn(r.paids, r.projects)
}

// fakeRateProvider devuelve un payload fijo o falla, según se configure.
type fakeRateProvider struct {
	payload json.RawMessage
	fail    bool
	calls   int
}

func (p *fakeRateProvider) GetBlue(_ context.Context) (json.RawMessage, error) {
	p.calls++
	if p.fail {
		return nil, errors.New("timeout consultando cotización")
	}
	return p.payload, nil
}
