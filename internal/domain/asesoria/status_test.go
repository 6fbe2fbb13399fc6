package asesoria

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseResponse(t *testing.T) {
	st, err := ParseResponse("  APROBADA ")
	require.NoError(t, err)
	assert.Equal(t, EstadoAprobada, st)

	st, err = ParseResponse("rechazada")
	require.NoError(t, err)
	assert.Equal(t, EstadoRechazada, st)

	_, err = ParseResponse("pendiente")
	kind, ok := httperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, httperr.KindInvalidInput, kind)
}

func TestRespond(t *testing.T) {
	today := day(2026, 3, 10)
	now := today.Add(9 * time.Hour)

	a := &models.Asesoria{
		Estado: string(EstadoPendiente),
		Fecha:  datatypes.Date(today),
	}

	require.NoError(t, Respond(a, "aprobada", "  nos vemos  ", today, now))
	assert.Equal(t, "aprobada", a.Estado)
	assert.Equal(t, "nos vemos", a.RespuestaProgramador)
	require.NotNil(t, a.RespondidoEn)
	assert.True(t, a.RespondidoEn.Equal(now))
}

func TestRespondAlreadyProcessed(t *testing.T) {
	today := day(2026, 3, 10)

	for _, estado := range []Status{EstadoAprobada, EstadoRechazada} {
		a := &models.Asesoria{Estado: string(estado), Fecha: datatypes.Date(today.AddDate(0, 0, 1))}

		err := Respond(a, "rechazada", "", today, today)

		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "already_processed"))
		kind, _ := httperr.KindOf(err)
		assert.Equal(t, httperr.KindConflict, kind)
		assert.Equal(t, string(estado), a.Estado)
		assert.Nil(t, a.RespondidoEn)
	}
}

func TestRespondPastDate(t *testing.T) {
	today := day(2026, 3, 10)
	a := &models.Asesoria{Estado: "pendiente", Fecha: datatypes.Date(today.AddDate(0, 0, -1))}

	err := Respond(a, "aprobada", "", today, today)

	assert.True(t, httperr.IsBusiness(err, "past_date"))
	assert.Equal(t, "pendiente", a.Estado)
}

func TestRespondPreconditionsBeforeEstado(t *testing.T) {
	today := day(2026, 3, 10)
	a := &models.Asesoria{Estado: "aprobada", Fecha: datatypes.Date(today)}

	err := Respond(a, "bogus", "", today, today)

	assert.True(t, httperr.IsBusiness(err, "already_processed"))
}

func TestRespondInvalidEstado(t *testing.T) {
	today := day(2026, 3, 10)
	a := &models.Asesoria{Estado: "pendiente", Fecha: datatypes.Date(today)}

	err := Respond(a, "cancelada", "", today, today)

	assert.True(t, httperr.IsBusiness(err, "invalid_estado"))
	assert.Equal(t, "pendiente", a.Estado)
}

func TestParseFechaHora(t *testing.T) {
	f, err := ParseFecha("2026-05-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", FechaString(f))

	_, err = ParseFecha("01/05/2026", time.UTC)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	h, err := ParseHora("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", HoraString(h))

	h, err = ParseHora("18:15:42")
	require.NoError(t, err)
	assert.Equal(t, "18:15", HoraString(h))

	_, err = ParseHora("tarde")
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}
