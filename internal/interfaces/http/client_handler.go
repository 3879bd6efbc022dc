package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/dto"
	"github.com/jcq-estructuras/presupuestos-api/internal/application/usecase"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain"
)

// ClientHandler maneja las peticiones HTTP de clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return Created(c, resp)
}

// List GET /api/clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	var f dto.ClientFilterRequest
	if err := c.QueryParser(&f); err != nil {
		return domain.BadRequest("Parámetros de consulta inválidos")
	}
	resp, err := h.uc.List(c.Context(), f)
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// ListPage GET /api/clients/pagination
func (h *ClientHandler) ListPage(c *fiber.Ctx) error {
	var f dto.ClientFilterRequest
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

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// Update PATCH /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	resp, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, resp)
}
