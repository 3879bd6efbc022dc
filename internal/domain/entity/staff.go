package entity

import "time"

// Staff representa un empleado de obra o administración.
// Invariante: siempre debe tener al menos CUIT o DNI.
type Staff struct {
	ID        string
	FirstName string
	LastName  string
	Cuit      string
	Dni       string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
