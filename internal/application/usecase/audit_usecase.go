package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain/repository"
	"github.com/jcq-estructuras/presupuestos-api/pkg/logger"
)

// AuditEntry datos de la acción a auditar, capturados por el middleware
// después de responder la petición primaria.
type AuditEntry struct {
	UserID    string
	Action    string // CREATE, UPDATE, DELETE
	Entity    string // User, Client, Project, Paid, Staff, Work-Record
	EntityID  string
	Changes   json.RawMessage
	IP        string
	UserAgent string
}

// AuditUseCase registra acciones en el audit log. Es un canal lateral:
// resuelve la geolocalización de la IP y persiste, pero nunca propaga
// errores al flujo principal; los loguea y los traga.
type AuditUseCase struct {
	auditRepo repository.AuditLogRepository
	geo       Geolocator
	log       *logger.Logger
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(auditRepo repository.AuditLogRepository, geo Geolocator, log *logger.Logger) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo, geo: geo, log: log}
}

// Record resuelve ubicación y persiste la entrada. Pensado para correr
// en una goroutine desacoplada de la petición, con su propio contexto.
func (uc *AuditUseCase) Record(ctx context.Context, e AuditEntry) {
	location := uc.geo.Lookup(ctx, e.IP)

	entry := &entity.AuditLog{
		ID:        uuid.New().String(),
		UserID:    e.UserID,
		Action:    e.Action,
		Entity:    e.Entity,
		EntityID:  e.EntityID,
		Changes:   e.Changes,
		IP:        e.IP,
		Location:  location,
		UserAgent: e.UserAgent,
		CreatedAt: time.Now(),
	}
	if err := uc.auditRepo.Create(ctx, entry); err != nil {
		uc.log.Error().Err(err).
			Str("action", e.Action).
			Str("entity", e.Entity).
			Str("entity_id", e.EntityID).
			Msg("no se pudo registrar la auditoría")
	}
}
