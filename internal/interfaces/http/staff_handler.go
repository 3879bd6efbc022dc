package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/dto"
	"github.com/jcq-estructuras/presupuestos-api/internal/application/usecase"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain"
)

// StaffHandler maneja las peticiones HTTP de personal y planillas de horas.
type StaffHandler struct {
	uc *usecase.StaffUseCase
}

// NewStaffHandler construye el handler.
func NewStaffHandler(uc *usecase.StaffUseCase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// Create POST /api/staff
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return Created(c, resp)
}

// List GET /api/staff
func (h *StaffHandler) List(c *fiber.Ctx) error {
	var f dto.StaffFilterRequest
	if err := c.QueryParser(&f); err != nil {
		return domain.BadRequest("Parámetros de consulta inválidos")
	}
	resp, err := h.uc.List(c.Context(), f)
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// ListPage GET /api/staff/pagination
func (h *StaffHandler) ListPage(c *fiber.Ctx) error {
	var f dto.StaffFilterRequest
	var page dto.PageRequest
	if err := c.QueryParser(&f); err != nil {
		return domain.BadRequest("Parámetros de consulta inválidos")
	}
	if err := c.QueryParser(&page); err != nil {
		return domain.BadRequest("Parámetros de consulta inválidos")
	}
	resp, meta, err := h.uc.ListPage(c.Context(), f, page)
	if err != nil {
		return err
	}
	return OKPage(c, resp, meta)
}

// GetByID GET /api/staff/:id
func (h *StaffHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// Update PATCH /api/staff/:id
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// Delete DELETE /api/staff/:id (arrastra la baja de sus planillas)
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	resp, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// CreateWorkRecord POST /api/staff/work-record
func (h *StaffHandler) CreateWorkRecord(c *fiber.Ctx) error {
	var in dto.CreateWorkRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.CreateWorkRecord(c.Context(), in)
	if err != nil {
		return err
	}
	return Created(c, resp)
}

// UpdateWorkRecord PATCH /api/staff/work-record/:id
func (h *StaffHandler) UpdateWorkRecord(c *fiber.Ctx) error {
	var in dto.UpdateWorkRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.UpdateWorkRecord(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// ListWorkRecords GET /api/staff/:staffId/work-records
func (h *StaffHandler) ListWorkRecords(c *fiber.Ctx) error {
	resp, err := h.uc.ListWorkRecords(c.Context(), c.Params("staffId"))
	if err != nil {
		return err
	}
	return OK(c, resp)
}
