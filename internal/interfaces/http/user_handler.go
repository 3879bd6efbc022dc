package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/dto"
	"github.com/jcq-estructuras/presupuestos-api/internal/application/usecase"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain"
)

// UserHandler maneja las peticiones HTTP de usuarios.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create POST /api/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return Created(c, resp)
}

// List GET /api/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	var f dto.UserFilterRequest
	if err := c.QueryParser(&f); err != nil {
		return domain.BadRequest("Parámetros de consulta inválidos")
	}
	resp, err := h.uc.List(c.Context(), f)
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// ListPage GET /api/users/pagination
func (h *UserHandler) ListPage(c *fiber.Ctx) error {
	var f dto.UserFilterRequest
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

// GetByID GET /api/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// Update PATCH /api/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// Delete DELETE /api/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	resp, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, resp)
}
