package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/dto"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain"
	"github.com/jcq-estructuras/presupuestos-api/pkg/logger"
)

// Envelope respuesta exitosa: {success:true, data}.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// PagedEnvelope respuesta exitosa paginada.
type PagedEnvelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data"`
	Meta    dto.Meta `json:"meta"`
}

// ErrorEnvelope respuesta de error. Message es string, salvo en 422 donde
// es un array con un mensaje por campo.
type ErrorEnvelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code"`
	Error      string `json:"error"`
	Message    any    `json:"message"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
}

// OK responde 200 con el envelope estándar.
func OK(c *fiber.Ctx, data any) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

// Created responde 201 con el envelope estándar.
func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Data: data})
}

// OKPage responde 200 con datos y metadatos de paginación.
func OKPage(c *fiber.Ctx, data any, meta dto.Meta) error {
	return c.JSON(PagedEnvelope{Success: true, Data: data, Meta: meta})
}

func codeFor(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	}
	return "INTERNAL_SERVER_ERROR"
}

// ErrorHandler punto único de traducción de errores al envelope de error.
// Los errores de dominio llevan su status por el centinela envuelto; los
// de validación salen como 422 con message array; cualquier otro error se
// loguea y se responde como 500 genérico (sin filtrar detalles internos).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var message any = "Error interno del servidor"

		var verr *dto.ValidationError
		var ferr *fiber.Error
		switch {
		case errors.As(err, &verr):
			status = fiber.StatusUnprocessableEntity
			message = verr.Messages
		case errors.Is(err, domain.ErrInvalidInput):
			status = fiber.StatusBadRequest
			message = err.Error()
		case errors.Is(err, domain.ErrNotFound):
			status = fiber.StatusNotFound
			message = err.Error()
		case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
			status = fiber.StatusConflict
			message = err.Error()
		case errors.Is(err, domain.ErrUnauthorized):
			status = fiber.StatusUnauthorized
			message = err.Error()
		case errors.Is(err, domain.ErrForbidden):
			status = fiber.StatusForbidden
			message = err.Error()
		case errors.As(err, &ferr):
			status = ferr.Code
			message = ferr.Message
		default:
			log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
		}

		return c.Status(status).JSON(ErrorEnvelope{
			Success:    false,
			StatusCode: status,
			Code:       codeFor(status),
			Error:      utils.StatusMessage(status),
			Message:    message,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Path:       c.Path(),
		})
	}
}
