package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/dto"
	"github.com/jcq-estructuras/presupuestos-api/internal/application/usecase"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain"
)

// PaidHandler maneja las peticiones HTTP de pagos.
type PaidHandler struct {
	uc *usecase.PaidUseCase
}

// NewPaidHandler construye el handler.
func NewPaidHandler(uc *usecase.PaidUseCase) *PaidHandler {
	return &PaidHandler{uc: uc}
}

// Create POST /api/paids
func (h *PaidHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaidRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return Created(c, resp)
}

// List GET /api/paids
func (h *PaidHandler) List(c *fiber.Ctx) error {
	var f dto.PaidFilterRequest
	if err := c.QueryParser(&f); err != nil {
		return domain.BadRequest("Parámetros de consulta inválidos")
	}
	resp, err := h.uc.List(c.Context(), f)
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// ListPage GET /api/paids/pagination
func (h *PaidHandler) ListPage(c *fiber.Ctx) error {
	var f dto.PaidFilterRequest
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

// ListByProject GET /api/paids/project/:projectId
func (h *PaidHandler) ListByProject(c *fiber.Ctx) error {
	resp, err := h.uc.ListByProject(c.Context(), c.Params("projectId"))
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// GetByID GET /api/paids/:id
func (h *PaidHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// Update PATCH /api/paids/:id
func (h *PaidHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaidRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// Delete DELETE /api/paids/:id
func (h *PaidHandler) Delete(c *fiber.Ctx) error {
	resp, err := h.uc.Remove(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, resp)
}
