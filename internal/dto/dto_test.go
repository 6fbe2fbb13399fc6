package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

func TestAsesoriaDTOFormatsDateAndTime(t *testing.T) {
	a := models.Asesoria{
		ID:     uuid.New(),
		Fecha:  datatypes.Date(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
		Hora:   datatypes.NewTime(9, 30, 15, 0),
		Estado: "pendiente",
	}

	b, err := json.Marshal(NewAsesoriaDTO(&a))
	require.NoError(t, err)

	assert.Contains(t, string(b), `"fecha":"2026-05-01"`)
	assert.Contains(t, string(b), `"hora":"09:30"`)
	assert.Equal(t, []AsesoriaDTO{}, NewAsesoriaList(nil))
}

func TestProgramadorDTOFallbackName(t *testing.T) {
	d := NewProgramadorDTO(&models.Programador{ID: uuid.New()})

	assert.Equal(t, "Sin Nombre", d.Nombre)
	assert.Nil(t, d.UsuarioID)
	assert.NotNil(t, d.HorasDisponibles)
}

func TestProgramadorDTONeverLeaksPassword(t *testing.T) {
	p := &models.Programador{
		ID:               uuid.New(),
		HorasDisponibles: []string{"09:00"},
		Usuario:          &models.Usuario{ID: uuid.New(), Nombre: "Lucía", PasswordHash: "$2a$secret"},
	}

	b, err := json.Marshal(NewProgramadorDTO(p))
	require.NoError(t, err)

	assert.NotContains(t, string(b), "secret")
	assert.Contains(t, string(b), `"nombre":"Lucía"`)
	assert.Contains(t, string(b), `"horasDisponibles":["09:00"]`)
}

func TestSlotOcupadoHidesRequester(t *testing.T) {
	a := models.Asesoria{
		ID:                   uuid.MustParse("3f2a1b4c-0d1e-4f00-8a11-b2c3d4e5f601"),
		NombreSolicitante:    "Luis",
		EmailSolicitante:     "luis@mail.com",
		TelefonoSolicitante:  "999",
		Comentario:           "privado",
		RespuestaProgramador: "ok",
		Fecha:                datatypes.Date(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
		Hora:                 datatypes.NewTime(10, 0, 0, 0),
		Estado:               "aprobada",
	}

	b, err := json.Marshal(NewSlotOcupadoList([]models.Asesoria{a}))
	require.NoError(t, err)

	out := string(b)
	assert.Contains(t, out, `"hora":"10:00"`)
	assert.Contains(t, out, `"estado":"aprobada"`)
	for _, leak := range []string{"Luis", "luis@mail.com", "999", "privado", `"ok"`} {
		assert.NotContains(t, out, leak)
	}
	assert.Equal(t, []SlotOcupadoDTO{}, NewSlotOcupadoList(nil))
}
