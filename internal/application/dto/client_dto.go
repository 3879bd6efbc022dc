package dto

import (
	"time"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
)

// CreateClientRequest entrada para alta de cliente. CUIT y DNI son
// opcionales por separado pero al menos uno debe estar (se valida en use case).
type CreateClientRequest struct {
	Fullname string `json:"fullname" validate:"required,min=1,max=200"`
	Phone    string `json:"phone" validate:"required,min=1,max=50"`
	Cuit     string `json:"cuit" validate:"omitempty,max=20"`
	Dni      string `json:"dni" validate:"omitempty,max=20"`
}

// UpdateClientRequest actualización parcial de cliente.
type UpdateClientRequest struct {
	Fullname *string `json:"fullname" validate:"omitempty,min=1,max=200"`
	Phone    *string `json:"phone" validate:"omitempty,min=1,max=50"`
	Cuit     *string `json:"cuit" validate:"omitempty,max=20"`
	Dni      *string `json:"dni" validate:"omitempty,max=20"`
}

// ClientFilterRequest filtros de listado (búsqueda parcial).
type ClientFilterRequest struct {
	Fullname string `query:"fullname"`
	Phone    string `query:"phone"`
	Cuit     string `query:"cuit"`
	Dni      string `query:"dni"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Fullname  string    `json:"fullname"`
	Phone     string    `json:"phone"`
	Cuit      string    `json:"cuit,omitempty"`
	Dni       string    `json:"dni,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientResponseFrom mapea la entidad a su representación pública.
func ClientResponseFrom(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Fullname:  c.Fullname,
		Phone:     c.Phone,
		Cuit:      c.Cuit,
		Dni:       c.Dni,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ClientListFrom mapea una lista de clientes.
func ClientListFrom(clients []*entity.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, ClientResponseFrom(c))
	}
	return out
}
