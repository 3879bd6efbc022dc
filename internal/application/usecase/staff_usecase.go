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

// Las planillas listan siempre las últimas 20 semanas.
const workRecordPageSize = 20

// StaffUseCase empleados y sus planillas semanales de horas.
// La baja de un empleado arrastra la baja lógica de todas sus planillas.
type StaffUseCase struct {
	staffRepo      repository.StaffRepository
	workRecordRepo repository.WorkRecordRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(staffRepo repository.StaffRepository, workRecordRepo repository.WorkRecordRepository) *StaffUseCase {
	return &StaffUseCase{staffRepo: staffRepo, workRecordRepo: workRecordRepo}
}

// Create da de alta un empleado.
func (uc *StaffUseCase) Create(ctx context.Context, in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Cuit == "" && in.Dni == "" {
		return nil, domain.BadRequest("Debe proporcionar CUIT o DNI del empleado")
	}
	now := time.Now()
	staff := &entity.Staff{
		ID:        uuid.New().String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Cuit:      in.Cuit,
		Dni:       in.Dni,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	resp := dto.StaffResponseFrom(staff)
	return &resp, nil
}

// GetByID devuelve un empleado activo.
func (uc *StaffUseCase) GetByID(ctx context.Context, id string) (*dto.StaffResponse, error) {
	staff, err := uc.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.NotFound("Empleado no encontrado")
	}
	resp := dto.StaffResponseFrom(staff)
	return &resp, nil
}

// List listado con filtros.
func (uc *StaffUseCase) List(ctx context.Context, f dto.StaffFilterRequest) ([]dto.StaffResponse, error) {
	staff, err := uc.staffRepo.List(ctx, repository.StaffFilter{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Cuit:      f.Cuit,
		Dni:       f.Dni,
	})
	if err != nil {
		return nil, err
	}
	return dto.StaffListFrom(staff), nil
}

// ListPage listado paginado.
func (uc *StaffUseCase) ListPage(ctx context.Context, f dto.StaffFilterRequest, page dto.PageRequest) ([]dto.StaffResponse, dto.Meta, error) {
	page.DefaultPage()
	staff, total, err := uc.staffRepo.ListPage(ctx, repository.StaffFilter{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Cuit:      f.Cuit,
		Dni:       f.Dni,
	}, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Meta{}, err
	}
	return dto.StaffListFrom(staff), dto.NewMeta(page.Page, page.Limit, total), nil
}

// Update actualización parcial. El merge no puede dejar al empleado sin
// CUIT ni DNI.
func (uc *StaffUseCase) Update(ctx context.Context, id string, in dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	staff, err := uc.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.NotFound(fmt.Sprintf("Empleado con ID %s no encontrado", id))
	}
	if in.FirstName != nil {
		staff.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		staff.LastName = *in.LastName
	}
	if in.Cuit != nil {
		staff.Cuit = *in.Cuit
	}
	if in.Dni != nil {
		staff.Dni = *in.Dni
	}
	if in.Category != nil {
		staff.Category = *in.Category
	}
	if staff.Cuit == "" && staff.Dni == "" {
		return nil, domain.BadRequest("Debe proporcionar CUIT o DNI del empleado")
	}
	staff.UpdatedAt = time.Now()
	if err := uc.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}
	resp := dto.StaffResponseFrom(staff)
	return &resp, nil
}

// Delete baja lógica del empleado y de todas sus planillas.
func (uc *StaffUseCase) Delete(ctx context.Context, id string) (*dto.MessageResponse, error) {
	staff, err := uc.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.NotFound("Empleado no encontrado")
	}
	now := time.Now()
	if err := uc.workRecordRepo.SoftDeleteByStaff(ctx, id, now); err != nil {
		return nil, err
	}
	if err := uc.staffRepo.SoftDelete(ctx, id, now); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Empleado eliminado exitosamente"}, nil
}

// CreateWorkRecord carga la planilla semanal de un empleado.
// total = (Σ horas lun–vie) × valor hora − adelanto; puede quedar negativo
// si el adelanto supera lo trabajado. endDate se deriva: startDate + 4 días.
func (uc *StaffUseCase) CreateWorkRecord(ctx context.Context, in dto.CreateWorkRecordRequest) (*dto.WorkRecordResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	staff, err := uc.staffRepo.GetByID(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.NotFound(fmt.Sprintf("Empleado con ID %s no encontrado", in.StaffID))
	}
	startDate, err := dto.ParseDate(in.StartDate)
	if err != nil {
		return nil, domain.BadRequest(err.Error())
	}
	now := time.Now()
	record := &entity.WorkRecord{
		ID:             uuid.New().String(),
		StaffID:        in.StaffID,
		ValuePerHour:   in.ValuePerHour,
		Advance:        in.Advance,
		HoursMonday:    in.HoursMonday,
		HoursTuesday:   in.HoursTuesday,
		HoursWednesday: in.HoursWednesday,
		HoursThursday:  in.HoursThursday,
		HoursFriday:    in.HoursFriday,
		StartDate:      startDate,
		EndDate:        startDate.AddDate(0, 0, 4),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	record.ComputeTotal()
	if err := uc.workRecordRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	resp := dto.WorkRecordResponseFrom(record)
	return &resp, nil
}

// UpdateWorkRecord actualización parcial de una planilla: mergea campo a
// campo sobre lo guardado y recalcula el total con los valores mergeados.
func (uc *StaffUseCase) UpdateWorkRecord(ctx context.Context, id string, in dto.UpdateWorkRecordRequest) (*dto.WorkRecordResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	record, err := uc.workRecordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.NotFound(fmt.Sprintf("Planilla con ID %s no encontrada", id))
	}
	if in.ValuePerHour != nil {
		record.ValuePerHour = *in.ValuePerHour
	}
	if in.Advance != nil {
		record.Advance = *in.Advance
	}
	if in.HoursMonday != nil {
		record.HoursMonday = *in.HoursMonday
	}
	if in.HoursTuesday != nil {
		record.HoursTuesday = *in.HoursTuesday
	}
	if in.HoursWednesday != nil {
		record.HoursWednesday = *in.HoursWednesday
	}
	if in.HoursThursday != nil {
		record.HoursThursday = *in.HoursThursday
	}
	if in.HoursFriday != nil {
		record.HoursFriday = *in.HoursFriday
	}
	if in.StartDate != nil {
		startDate, err := dto.ParseDate(*in.StartDate)
		if err != nil {
			return nil, domain.BadRequest(err.Error())
		}
		record.StartDate = startDate
		record.EndDate = startDate.AddDate(0, 0, 4)
	}
	record.ComputeTotal()
	record.UpdatedAt = time.Now()
	if err := uc.workRecordRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	resp := dto.WorkRecordResponseFrom(record)
	return &resp, nil
}

// ListWorkRecords últimas planillas del empleado (startDate desc, createdAt desc).
func (uc *StaffUseCase) ListWorkRecords(ctx context.Context, staffID string) ([]dto.WorkRecordResponse, error) {
	records, err := uc.workRecordRepo.ListByStaff(ctx, staffID, workRecordPageSize)
	if err != nil {
		return nil, err
	}
	return dto.WorkRecordListFrom(records), nil
}
