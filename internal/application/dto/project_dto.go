package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
)

// CreateProjectRequest entrada para alta de proyecto. Las fechas se
// aceptan en RFC3339 o YYYY-MM-DD; dateEnd debe ser posterior a dateInit
// (se valida en use case, con mensaje de negocio).
type CreateProjectRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	ClientID        string          `json:"clientId" validate:"required,uuid"`
	LocationAddress string          `json:"locationAddress" validate:"omitempty,max=300"`
	LocationLat     *float64        `json:"locationLat" validate:"omitempty,latitude"`
	LocationLng     *float64        `json:"locationLng" validate:"omitempty,longitude"`
	Workers         int             `json:"workers" validate:"omitempty,min=0"`
	DateInit        string          `json:"dateInit" validate:"required"`
	DateEnd         string          `json:"dateEnd" validate:"required"`
}

// UpdateProjectRequest actualización parcial; el estado NO se toca acá
// (tiene su propio endpoint con la máquina de estados).
type UpdateProjectRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	ClientID        *string          `json:"clientId" validate:"omitempty,uuid"`
	LocationAddress *string          `json:"locationAddress" validate:"omitempty,max=300"`
	LocationLat     *float64         `json:"locationLat" validate:"omitempty,latitude"`
	LocationLng     *float64         `json:"locationLng" validate:"omitempty,longitude"`
	Workers         *int             `json:"workers" validate:"omitempty,min=0"`
	DateInit        *string          `json:"dateInit"`
	DateEnd         *string          `json:"dateEnd"`
}

// ChangeProjectStatusRequest entrada del cambio de estado.
type ChangeProjectStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=BUDGET ACTIVE IN_PROCESS FINISHED DELETED"`
}

// ProjectFilterRequest filtros de listado. clientId y status exactos,
// el resto rangos inclusivos.
type ProjectFilterRequest struct {
	ClientID     string           `query:"clientId" validate:"omitempty,uuid"`
	Status       string           `query:"status" validate:"omitempty,oneof=BUDGET ACTIVE IN_PROCESS FINISHED DELETED"`
	WorkersMin   *int             `query:"workersMin" validate:"omitempty,min=0"`
	WorkersMax   *int             `query:"workersMax" validate:"omitempty,min=0"`
	AmountMin    *decimal.Decimal `query:"amountMin"`
	AmountMax    *decimal.Decimal `query:"amountMax"`
	DateInitFrom string           `query:"dateInitFrom"`
	DateInitTo   string           `query:"dateInitTo"`
}

// ProjectResponse salida de un proyecto con sus totales derivados.
type ProjectResponse struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
	Rest            decimal.Decimal `json:"rest"`
	Status          string          `json:"status"`
	UsdPrice        json.RawMessage `json:"usdPrice,omitempty"`
	ClientID        string          `json:"clientId"`
	LocationAddress string          `json:"locationAddress,omitempty"`
	LocationLat     *float64        `json:"locationLat,omitempty"`
	LocationLng     *float64        `json:"locationLng,omitempty"`
	Workers         int             `json:"workers"`
	DateInit        time.Time       `json:"dateInit"`
	DateEnd         time.Time       `json:"dateEnd"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ProjectResponseFrom mapea la entidad a su representación pública.
func ProjectResponseFrom(p *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:              p.ID,
		Amount:          p.Amount,
		TotalPaid:       p.TotalPaid,
		Rest:            p.Rest,
		Status:          p.Status,
		UsdPrice:        p.UsdPrice,
		ClientID:        p.ClientID,
		LocationAddress: p.LocationAddress,
		LocationLat:     p.LocationLat,
		LocationLng:     p.LocationLng,
		Workers:         p.Workers,
		DateInit:        p.DateInit,
		DateEnd:         p.DateEnd,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ProjectListFrom mapea una lista de proyectos.
func ProjectListFrom(projects []*entity.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectResponseFrom(p))
	}
	return out
}
