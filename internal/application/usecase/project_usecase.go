package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/dto"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/repository"
)

// ProjectUseCase presupuestos/obras: CRUD, máquina de estados y totales.
// Los campos derivados (totalPaid, rest) solo los escribe el recálculo
// del ledger; el resto del código los trata como de solo lectura.
type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
	clientRepo  repository.ClientRepository
	paidRepo    repository.PaidRepository
	rates       RateProvider
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(
	projectRepo repository.ProjectRepository,
	clientRepo repository.ClientRepository,
	paidRepo repository.PaidRepository,
	rates RateProvider,
) *ProjectUseCase {
	return &ProjectUseCase{projectRepo: projectRepo, clientRepo: clientRepo, paidRepo: paidRepo, rates: rates}
}

// RecalculateLedger recomputa totalPaid como la suma de pagos activos y
// deriva rest = amount − totalPaid. Es idempotente y best-effort: si el
// proyecto ya no existe no falla (el UPDATE afecta 0 filas).
// Se invoca después de cada alta, modificación o baja de pago, con los
// repositorios de la misma transacción.
func RecalculateLedger(ctx context.Context, paids repository.PaidRepository, projects repository.ProjectRepository, projectID string) error {
	sum, err := paids.SumByProject(ctx, projectID)
	if err != nil {
		return err
	}
	return projects.UpdateTotals(ctx, projectID, sum)
}

// Create da de alta un proyecto en estado BUDGET con totales inicializados.
func (uc *ProjectUseCase) Create(ctx context.Context, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if !in.Amount.IsPositive() {
		return nil, domain.BadRequest("El monto del proyecto debe ser mayor que cero")
	}
	dateInit, err := dto.ParseDate(in.DateInit)
	if err != nil {
		return nil, domain.BadRequest(err.Error())
	}
	dateEnd, err := dto.ParseDate(in.DateEnd)
	if err != nil {
		return nil, domain.BadRequest(err.Error())
	}
	if !dateEnd.After(dateInit) {
		return nil, domain.BadRequest("La fecha de finalización debe ser posterior a la fecha de inicio")
	}
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NotFound("Cliente no encontrado")
	}
	now := time.Now()
	project := &entity.Project{
		ID:              uuid.New().String(),
		Amount:          in.Amount,
		TotalPaid:       decimal.Zero,
		Rest:            in.Amount,
		Status:          entity.StatusBudget,
		ClientID:        in.ClientID,
		LocationAddress: in.LocationAddress,
		LocationLat:     in.LocationLat,
		LocationLng:     in.LocationLng,
		Workers:         in.Workers,
		DateInit:        dateInit,
		DateEnd:         dateEnd,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	resp := dto.ProjectResponseFrom(project)
	return &resp, nil
}

// GetByID devuelve un proyecto activo.
func (uc *ProjectUseCase) GetByID(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.NotFound("Proyecto no encontrado")
	}
	resp := dto.ProjectResponseFrom(project)
	return &resp, nil
}

func projectFilterFrom(f dto.ProjectFilterRequest) (repository.ProjectFilter, error) {
	out := repository.ProjectFilter{
		ClientID:   f.ClientID,
		Status:     f.Status,
		WorkersMin: f.WorkersMin,
		WorkersMax: f.WorkersMax,
		AmountMin:  f.AmountMin,
		AmountMax:  f.AmountMax,
	}
	if f.DateInitFrom != "" {
		t, err := dto.ParseDate(f.DateInitFrom)
		if err != nil {
			return out, domain.BadRequest(err.Error())
		}
		out.DateInitFrom = &t
	}
	if f.DateInitTo != "" {
		t, err := dto.ParseDate(f.DateInitTo)
		if err != nil {
			return out, domain.BadRequest(err.Error())
		}
		out.DateInitTo = &t
	}
	return out, nil
}

// List listado con filtros.
func (uc *ProjectUseCase) List(ctx context.Context, f dto.ProjectFilterRequest) ([]dto.ProjectResponse, error) {
	if err := dto.Validate(f); err != nil {
		return nil, err
	}
	filter, err := projectFilterFrom(f)
	if err != nil {
		return nil, err
	}
	projects, err := uc.projectRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.ProjectListFrom(projects), nil
}

// ListPage listado paginado.
func (uc *ProjectUseCase) ListPage(ctx context.Context, f dto.ProjectFilterRequest, page dto.PageRequest) ([]dto.ProjectResponse, dto.Meta, error) {
	if err := dto.Validate(f); err != nil {
		return nil, dto.Meta{}, err
	}
	filter, err := projectFilterFrom(f)
	if err != nil {
		return nil, dto.Meta{}, err
	}
	page.DefaultPage()
	projects, total, err := uc.projectRepo.ListPage(ctx, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Meta{}, err
	}
	return dto.ProjectListFrom(projects), dto.NewMeta(page.Page, page.Limit, total), nil
}

// Update actualización parcial. Las fechas se revalidan sobre los valores
// mergeados; un cambio de monto rederiva rest = amount − totalPaid.
func (uc *ProjectUseCase) Update(ctx context.Context, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.NotFound("Proyecto no encontrado")
	}
	if in.ClientID != nil && *in.ClientID != project.ClientID {
		client, err := uc.clientRepo.GetByID(ctx, *in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.NotFound("Cliente no encontrado")
		}
		project.ClientID = *in.ClientID
	}
	if in.DateInit != nil {
		t, err := dto.ParseDate(*in.DateInit)
		if err != nil {
			return nil, domain.BadRequest(err.Error())
		}
		project.DateInit = t
	}
	if in.DateEnd != nil {
		t, err := dto.ParseDate(*in.DateEnd)
		if err != nil {
			return nil, domain.BadRequest(err.Error())
		}
		project.DateEnd = t
	}
	if !project.DateEnd.After(project.DateInit) {
		return nil, domain.BadRequest("La fecha de finalización debe ser posterior a la fecha de inicio")
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.BadRequest("El monto del proyecto debe ser mayor que cero")
		}
		project.Amount = *in.Amount
		project.Rest = project.Amount.Sub(project.TotalPaid)
	}
	if in.LocationAddress != nil {
		project.LocationAddress = *in.LocationAddress
	}
	if in.LocationLat != nil {
		project.LocationLat = in.LocationLat
	}
	if in.LocationLng != nil {
		project.LocationLng = in.LocationLng
	}
	if in.Workers != nil {
		project.Workers = *in.Workers
	}
	project.UpdatedAt = time.Now()
	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	resp := dto.ProjectResponseFrom(project)
	return &resp, nil
}

// ChangeStatus aplica la máquina de estados. Al activar (desde BUDGET o
// DELETED) consulta la cotización del dólar y la snapshotea junto con el
// nuevo estado en una sola escritura; si la cotización falla no se
// persiste nada.
func (uc *ProjectUseCase) ChangeStatus(ctx context.Context, id string, in dto.ChangeProjectStatusRequest) (*dto.ProjectResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.NotFound("Proyecto no encontrado")
	}
	if project.Status == in.Status {
		return nil, domain.BadRequest("El proyecto ya se encuentra en ese estado")
	}
	if !entity.CanTransition(project.Status, in.Status) {
		allowed := strings.Join(entity.StatusTransitions[project.Status], ", ")
		if allowed == "" {
			allowed = "ninguna"
		}
		return nil, domain.BadRequest(fmt.Sprintf(
			"No se puede cambiar de %s a %s. Transiciones válidas desde %s: %s",
			project.Status, in.Status, project.Status, allowed))
	}

	if in.Status == entity.StatusActive {
		// BUDGET y DELETED son los únicos orígenes posibles de ACTIVE,
		// así que la activación siempre refresca la cotización.
		quote, err := uc.rates.GetBlue(ctx)
		if err != nil {
			return nil, domain.BadRequest("No se pudo obtener el precio del dólar. Intente nuevamente en unos momentos.")
		}
		project.UsdPrice = quote
	}

	project.Status = in.Status
	project.UpdatedAt = time.Now()
	if err := uc.projectRepo.UpdateStatus(ctx, project.ID, project.Status, project.UsdPrice); err != nil {
		return nil, err
	}
	resp := dto.ProjectResponseFrom(project)
	return &resp, nil
}

// Delete baja lógica.
func (uc *ProjectUseCase) Delete(ctx context.Context, id string) (*dto.MessageResponse, error) {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.NotFound("Proyecto no encontrado")
	}
	if err := uc.projectRepo.SoftDelete(ctx, id, time.Now()); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Proyecto eliminado exitosamente"}, nil
}
