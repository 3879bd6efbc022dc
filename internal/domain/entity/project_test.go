package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcq-estructuras/presupuestos-api/internal/domain/entity"
)

func TestCanTransition_TablaCompleta(t *testing.T) {
	allowed := [][2]string{
		{entity.StatusBudget, entity.StatusActive},
		{entity.StatusActive, entity.StatusInProcess},
		{entity.StatusActive, entity.StatusDeleted},
		{entity.StatusInProcess, entity.StatusFinished},
		{entity.StatusInProcess, entity.StatusDeleted},
		{entity.StatusDeleted, entity.StatusActive},
	}
	for _, edge := range allowed {
		assert.True(t, entity.CanTransition(edge[0], edge[1]),
			"%s → %s debe estar permitida", edge[0], edge[1])
	}

	denied := [][2]string{
		{entity.StatusBudget, entity.StatusInProcess},
		{entity.StatusBudget, entity.StatusFinished},
		{entity.StatusBudget, entity.StatusDeleted},
		{entity.StatusActive, entity.StatusBudget},
		{entity.StatusActive, entity.StatusFinished},
		{entity.StatusInProcess, entity.StatusActive},
		{entity.StatusFinished, entity.StatusActive},
		{entity.StatusFinished, entity.StatusDeleted},
		{entity.StatusDeleted, entity.StatusBudget},
		{entity.StatusDeleted, entity.StatusFinished},
	}
	for _, edge := range denied {
		assert.False(t, entity.CanTransition(edge[0], edge[1]),
			"%s → %s no debe estar permitida", edge[0], edge[1])
	}
}

func TestCanTransition_FinishedEsTerminal(t *testing.T) {
	assert.Empty(t, entity.StatusTransitions[entity.StatusFinished])
}

func TestValidStatus(t *testing.T) {
	assert.True(t, entity.ValidStatus(entity.StatusBudget))
	assert.True(t, entity.ValidStatus(entity.StatusDeleted))
	assert.False(t, entity.ValidStatus("PAUSED"))
	assert.False(t, entity.ValidStatus(""))
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole(entity.RoleAdmin))
	assert.True(t, entity.ValidRole(entity.RoleSubadmin))
	assert.True(t, entity.ValidRole(entity.RoleManager))
	assert.False(t, entity.ValidRole("admin"), "los roles son case-sensitive")
}
