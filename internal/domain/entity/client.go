package entity

import "time"

// Client representa un cliente de la constructora (empresa o persona).
// Invariante: siempre debe tener al menos CUIT o DNI.
type Client struct {
	ID        string
	Fullname  string
	Phone     string
	Cuit      string // opcional si hay DNI
	Dni       string // opcional si hay CUIT
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
