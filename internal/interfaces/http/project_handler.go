package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/dto"
	"github.com/jcq-estructuras/presupuestos-api/internal/application/usecase"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain"
)

// ProjectHandler maneja las peticiones HTTP de proyectos.
type ProjectHandler struct {
	uc *usecase.ProjectUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// Create POST /api/projects
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return Created(c, resp)
}

// List GET /api/projects
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	var f dto.ProjectFilterRequest
	if err := c.QueryParser(&f); err != nil {
		return domain.BadRequest("Parámetros de consulta inválidos")
	}
	resp, err := h.uc.List(c.Context(), f)
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// ListPage GET /api/projects/pagination
func (h *ProjectHandler) ListPage(c *fiber.Ctx) error {
	var f dto.ProjectFilterRequest
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

// GetByID GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// Update PATCH /api/projects/:id
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// ChangeStatus PATCH /api/projects/:id/status
func (h *ProjectHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeProjectStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.ChangeStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// Delete DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	resp, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, resp)
}
