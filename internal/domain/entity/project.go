package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un proyecto.
const (
	StatusBudget    = "BUDGET"
	StatusActive    = "ACTIVE"
	StatusInProcess = "IN_PROCESS"
	StatusFinished  = "FINISHED"
	StatusDeleted   = "DELETED"
)

// ValidStatus indica si el estado existe.
func ValidStatus(s string) bool {
	switch s {
	case StatusBudget, StatusActive, StatusInProcess, StatusFinished, StatusDeleted:
		return true
	}
	return false
}

// StatusTransitions tabla fija de transiciones permitidas.
// FINISHED es terminal; DELETED puede restaurarse a ACTIVE.
var StatusTransitions = map[string][]string{
	StatusBudget:    {StatusActive},
	StatusActive:    {StatusInProcess, StatusDeleted},
	StatusInProcess: {StatusFinished, StatusDeleted},
	StatusFinished:  {},
	StatusDeleted:   {StatusActive},
}

// CanTransition indica si el cambio from→to está en la tabla.
func CanTransition(from, to string) bool {
	for _, s := range StatusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Project representa un presupuesto/obra. Los totales derivados
// (TotalPaid, Rest) son propiedad exclusiva del proyecto: solo el
// recálculo del ledger puede escribirlos.
type Project struct {
	ID              string
	Amount          decimal.Decimal
	TotalPaid       decimal.Decimal
	Rest            decimal.Decimal // invariante: Rest = Amount - TotalPaid
	Status          string
	UsdPrice        json.RawMessage // snapshot completo de la cotización al activar
	ClientID        string
	LocationAddress string
	LocationLat     *float64
	LocationLng     *float64
	Workers         int
	DateInit        time.Time
	DateEnd         time.Time // invariante: DateEnd > DateInit
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}
