package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcq-estructuras/presupuestos-api/internal/application/dto"
)

func TestPageRequest_Defaults(t *testing.T) {
	cases := []struct {
		name              string
		in                dto.PageRequest
		wantPage, wantLim int
	}{
		{"vacío usa página 1 y 10 por página", dto.PageRequest{}, 1, 10},
		{"valores negativos vuelven al default", dto.PageRequest{Page: -3, Limit: -1}, 1, 10},
		{"límite por encima del tope se recorta a 100", dto.PageRequest{Page: 2, Limit: 500}, 2, 100},
		{"valores válidos se respetan", dto.PageRequest{Page: 4, Limit: 25}, 4, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.DefaultPage()
			assert.Equal(t, tc.wantPage, tc.in.Page)
			assert.Equal(t, tc.wantLim, tc.in.Limit)
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	p := dto.PageRequest{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())
}

func TestNewMeta_DerivaBanderasDeNavegacion(t *testing.T) {
	meta := dto.NewMeta(2, 10, 35)
	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage)

	first := dto.NewMeta(1, 10, 35)
	assert.False(t, first.HasPreviousPage)
	assert.True(t, first.HasNextPage)

	last := dto.NewMeta(4, 10, 35)
	assert.True(t, last.HasPreviousPage)
	assert.False(t, last.HasNextPage)

	empty := dto.NewMeta(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNextPage)
	assert.False(t, empty.HasPreviousPage)
}

func TestValidate_MensajesPorCampoConNombreJSON(t *testing.T) {
	err := dto.Validate(dto.LoginRequest{Email: "no-es-email"})
	require.Error(t, err)

	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "El campo email debe ser un email válido")
	assert.Contains(t, verr.Messages, "El campo password es obligatorio")
}

func TestParseDate_AceptaISOYFechaCorta(t *testing.T) {
	d, err := dto.ParseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())

	d, err = dto.ParseDate("2025-03-01T12:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 12, d.Hour())

	_, err = dto.ParseDate("01/03/2025")
	assert.Error(t, err)
}
