package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/dto"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/repository"
)

// PaidUseCase pagos contra proyectos. Toda mutación corre dentro de una
// transacción: validar el restante, escribir el pago y recalcular el
// ledger como una unidad. Dos pagos concurrentes sobre el mismo proyecto
// no pueden sobregirar el monto.
type PaidUseCase struct {
	tx       TxRunner
	paidRepo repository.PaidRepository
}

// NewPaidUseCase construye el caso de uso. paidRepo se usa solo para
// lecturas; las mutaciones obtienen sus repos del TxRunner.
func NewPaidUseCase(tx TxRunner, paidRepo repository.PaidRepository) *PaidUseCase {
	return &PaidUseCase{tx: tx, paidRepo: paidRepo}
}

// Create registra un pago. El monto no puede exceder el restante del
// proyecto; la validación y la escritura son atómicas.
func (uc *PaidUseCase) Create(ctx context.Context, in dto.CreatePaidRequest) (*dto.PaidResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if !in.Amount.IsPositive() {
		return nil, domain.BadRequest("El monto del pago debe ser mayor que cero")
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.BadRequest(err.Error())
	}

	var resp dto.PaidResponse
	err = uc.tx.Run(ctx, func(paids repository.PaidRepository, projects repository.ProjectRepository) error {
		project, err := projects.GetByID(ctx, in.ProjectID)
		if err != nil {
			return err
		}
		if project == nil {
			return domain.NotFound("Proyecto no encontrado")
		}
		if in.Amount.GreaterThan(project.Rest) {
			return domain.BadRequest(fmt.Sprintf(
				"El monto del pago ($%s) excede el restante del proyecto ($%s)",
				in.Amount.String(), project.Rest.String()))
		}
		now := time.Now()
		paid := &entity.Paid{
			ID:        uuid.New().String(),
			Amount:    in.Amount,
			Date:      date,
			Bill:      in.Bill,
			ProjectID: in.ProjectID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := paids.Create(ctx, paid); err != nil {
			return err
		}
		if err := RecalculateLedger(ctx, paids, projects, in.ProjectID); err != nil {
			return err
		}
		resp = dto.PaidResponseFrom(paid)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetByID devuelve un pago activo.
func (uc *PaidUseCase) GetByID(ctx context.Context, id string) (*dto.PaidResponse, error) {
	paid, err := uc.paidRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if paid == nil {
		return nil, domain.NotFound("Pago no encontrado")
	}
	resp := dto.PaidResponseFrom(paid)
	return &resp, nil
}

func paidFilterFrom(f dto.PaidFilterRequest) (repository.PaidFilter, error) {
	out := repository.PaidFilter{
		ProjectID: f.ProjectID,
		Bill:      f.Bill,
		AmountMin: f.AmountMin,
		AmountMax: f.AmountMax,
	}
	if f.DateFrom != "" {
		t, err := dto.ParseDate(f.DateFrom)
		if err != nil {
			return out, domain.BadRequest(err.Error())
		}
		out.DateFrom = &t
	}
	if f.DateTo != "" {
		t, err := dto.ParseDate(f.DateTo)
		if err != nil {
			return out, domain.BadRequest(err.Error())
		}
		out.DateTo = &t
	}
	return out, nil
}

// List listado con filtros.
func (uc *PaidUseCase) List(ctx context.Context, f dto.PaidFilterRequest) ([]dto.PaidResponse, error) {
	if err := dto.Validate(f); err != nil {
		return nil, err
	}
	filter, err := paidFilterFrom(f)
	if err != nil {
		return nil, err
	}
	paids, err := uc.paidRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.PaidListFrom(paids), nil
}

// ListPage listado paginado.
func (uc *PaidUseCase) ListPage(ctx context.Context, f dto.PaidFilterRequest, page dto.PageRequest) ([]dto.PaidResponse, dto.Meta, error) {
	if err := dto.Validate(f); err != nil {
		return nil, dto.Meta{}, err
	}
	filter, err := paidFilterFrom(f)
	if err != nil {
		return nil, dto.Meta{}, err
	}
	page.DefaultPage()
	paids, total, err := uc.paidRepo.ListPage(ctx, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Meta{}, err
	}
	return dto.PaidListFrom(paids), dto.NewMeta(page.Page, page.Limit, total), nil
}

// ListByProject todos los pagos activos de un proyecto.
func (uc *PaidUseCase) ListByProject(ctx context.Context, projectID string) ([]dto.PaidResponse, error) {
	paids, err := uc.paidRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return dto.PaidListFrom(paids), nil
}

// Update actualización parcial. Un cambio de monto se valida contra el
// total hipotético (totalPaid − viejo + nuevo); si el restante quedara
// negativo se rechaza.
func (uc *PaidUseCase) Update(ctx context.Context, id string, in dto.UpdatePaidRequest) (*dto.PaidResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Amount != nil && !in.Amount.IsPositive() {
		return nil, domain.BadRequest("El monto del pago debe ser mayor que cero")
	}

	var resp dto.PaidResponse
	err := uc.tx.Run(ctx, func(paids repository.PaidRepository, projects repository.ProjectRepository) error {
		paid, err := paids.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if paid == nil {
			return domain.NotFound("Pago no encontrado")
		}
		if in.Amount != nil {
			project, err := projects.GetByID(ctx, paid.ProjectID)
			if err != nil {
				return err
			}
			if project != nil {
				newTotal := project.TotalPaid.Sub(paid.Amount).Add(*in.Amount)
				if project.Amount.Sub(newTotal).IsNegative() {
					return domain.BadRequest("El nuevo monto del pago excedería el total del proyecto")
				}
			}
			paid.Amount = *in.Amount
		}
		if in.Date != nil {
			t, err := dto.ParseDate(*in.Date)
			if err != nil {
				return domain.BadRequest(err.Error())
			}
			paid.Date = t
		}
		if in.Bill != nil {
			paid.Bill = *in.Bill
		}
		paid.UpdatedAt = time.Now()
		if err := paids.Update(ctx, paid); err != nil {
			return err
		}
		if err := RecalculateLedger(ctx, paids, projects, paid.ProjectID); err != nil {
			return err
		}
		resp = dto.PaidResponseFrom(paid)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Remove baja lógica del pago y recálculo del ledger, en transacción.
func (uc *PaidUseCase) Remove(ctx context.Context, id string) (*dto.MessageResponse, error) {
	err := uc.tx.Run(ctx, func(paids repository.PaidRepository, projects repository.ProjectRepository) error {
		paid, err := paids.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if paid == nil {
			return domain.NotFound("Pago no encontrado")
		}
		if err := paids.SoftDelete(ctx, id, time.Now()); err != nil {
			return err
		}
		return RecalculateLedger(ctx, paids, projects, paid.ProjectID)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Pago eliminado exitosamente"}, nil
}
