package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "ADMIN"
	RoleSubadmin = "SUBADMIN"
	RoleManager  = "MANAGER"
)

// ValidRole indica si el rol existe.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleSubadmin || r == RoleManager
}

// User representa un usuario del back-office.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Role         string // ADMIN, SUBADMIN, MANAGER
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // soft delete
}
