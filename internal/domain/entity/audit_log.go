package entity

import (
	"encoding/json"
	"time"
)

// AuditLog registro de auditoría append-only. Se escribe una sola vez,
// después de responder la petición primaria; nunca se actualiza.
type AuditLog struct {
	ID        string
	UserID    string // vacío si la acción no tiene usuario asociado
	Action    string // CREATE, UPDATE, DELETE
	Entity    string // User, Client, Project, Paid, Staff, Work-Record
	EntityID  string
	Changes   json.RawMessage // payload de la respuesta
	IP        string
	Location  string
	UserAgent string
	CreatedAt time.Time
}
