package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/auth"
	"github.com/jcq-estructuras/presupuestos-api/internal/application/dto"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain"
)

// AuthHandler maneja login y registro.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login (público)
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return err
	}
	return OK(c, resp)
}

// Register POST /api/auth/register (ADMIN, SUBADMIN)
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.BadRequest("Cuerpo de la petición inválido")
	}
	resp, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return err
	}
	return Created(c, resp)
}
