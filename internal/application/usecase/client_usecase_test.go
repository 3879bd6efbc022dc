package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/dto"
	"github.com/jcq-estructuras/presupuestos-api/internal/application/usecase"
	"github.com/jcq-estructuras/presupuestos-api/internal/domain"
)

func TestClientCreate_ExigeCuitODni(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo())

	_, err := uc.Create(context.Background(), dto.CreateClientRequest{
		Fullname: "María López",
		Phone:    "11-4444-5555",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Debe proporcionar CUIT o DNI del cliente", err.Error())

	resp, err := uc.Create(context.Background(), dto.CreateClientRequest{
		Fullname: "María López",
		Phone:    "11-4444-5555",
		Dni:      "27888999",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
}

func TestClientCreate_ValidacionDeCampos(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo())

	_, err := uc.Create(context.Background(), dto.CreateClientRequest{Cuit: "30-11111111-9"})
	require.Error(t, err)

	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr, "campos obligatorios ausentes deben salir como error de validación")
	assert.Contains(t, verr.Messages, "El campo fullname es obligatorio")
	assert.Contains(t, verr.Messages, "El campo phone es obligatorio")
}

func TestClientUpdate_ElMergeNoPuedeDejarloSinDocumento(t *testing.T) {
	repo := newFakeClientRepo()
	uc := usecase.NewClientUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateClientRequest{
		Fullname: "María López",
		Phone:    "11-4444-5555",
		Cuit:     "27-27888999-1",
	})
	require.NoError(t, err)

	empty := ""
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateClientRequest{Cuit: &empty})
	require.Error(t, err)
	assert.Equal(t, "El cliente debe tener CUIT o DNI", err.Error())
}

func TestClientDelete_BajaLogica(t *testing.T) {
	repo := newFakeClientRepo()
	uc := usecase.NewClientUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateClientRequest{
		Fullname: "María López",
		Phone:    "11-4444-5555",
		Dni:      "27888999",
	})
	require.NoError(t, err)

	msg, err := uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cliente eliminado exitosamente", msg.Message)

	_, err = uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "un cliente dado de baja no se puede leer")

	// La baja repetida también es 404: el registro ya no está activo.
	_, err = uc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
