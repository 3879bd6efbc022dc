package http

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/usecase"
)

// AuditDescriptor declara qué acción y entidad audita una ruta.
// Se pasa como dato al registrar la ruta, no hay nada implícito.
type AuditDescriptor struct {
	Action string // CREATE, UPDATE, DELETE
	Entity string // User, Client, Project, Paid, Staff, Work-Record
}

// Audited registra la acción en el audit log después de una respuesta
// exitosa (2xx). La captura de IP/user-agent/respuesta ocurre dentro de
// la petición; la geolocalización y la escritura corren en una goroutine
// aparte con su propio contexto, y nunca afectan la respuesta primaria.
func Audited(audit *usecase.AuditUseCase, d AuditDescriptor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		status := c.Response().StatusCode()
		if status < 200 || status >= 300 {
			return nil
		}

		// El cuerpo de la respuesta se reutiliza al volver el handler;
		// copiar antes de soltar la goroutine.
		body := make([]byte, len(c.Response().Body()))
		copy(body, c.Response().Body())

		// Las bajas devuelven {message}, sin id en el cuerpo; ahí el id
		// sale del path.
		entityID := extractEntityID(body)
		if entityID == "" {
			entityID = c.Params("id")
		}

		entry := usecase.AuditEntry{
			UserID:    GetUserID(c),
			Action:    d.Action,
			Entity:    d.Entity,
			EntityID:  entityID,
			Changes:   body,
			IP:        realIP(c),
			UserAgent: c.Get(fiber.HeaderUserAgent),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			audit.Record(ctx, entry)
		}()
		return nil
	}
}

// extractEntityID saca data.id del envelope de respuesta; vacío si no hay.
func extractEntityID(body []byte) string {
	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	return resp.Data.ID
}

// realIP IP real del cliente detrás de proxies: X-Forwarded-For (primer
// valor), luego X-Real-Ip, Cf-Connecting-Ip, y por último la remota.
func realIP(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
	}
	if ip := c.Get("X-Real-Ip"); ip != "" {
		return ip
	}
	if ip := c.Get("Cf-Connecting-Ip"); ip != "" {
		return ip
	}
	return c.IP()
}
