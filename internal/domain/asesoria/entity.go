package asesoria

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

// ===============================
// Parsing de data / hora
// ===============================

func ParseFecha(raw string, loc *time.Location) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), loc)
	if err != nil {
		return datatypes.Date{}, httperr.InvalidErr("invalid_date", "Fecha inválida, use YYYY-MM-DD.")
	}
	return datatypes.Date(t), nil
}

// ParseHora aceita HH:MM e HH:MM:SS.
func ParseHora(raw string) (datatypes.Time, error) {
	raw = strings.TrimSpace(raw)

	layout := HourLayout
	if len(raw) > 5 {
		layout = "15:04:05"
	}

	t, err := time.Parse(layout, raw)
	if err != nil {
		return 0, httperr.InvalidErr("invalid_time", "Hora inválida, use HH:MM.")
	}
	return datatypes.NewTime(t.Hour(), t.Minute(), 0, 0), nil
}

// ===============================
// Domain Actions
// ===============================

// Respond aplica aprovação/rejeição. `today` é a data corrente no fuso da
// aplicação; asesorías de datas passadas não podem mais ser geridas.
func Respond(
	a *models.Asesoria,
	estado string,
	respuesta string,
	today time.Time,
	now time.Time,
) error {
	if err := CanRespond(Status(a.Estado)); err != nil {
		return err
	}

	if FechaString(a.Fecha) < today.Format(DateLayout) {
		return httperr.ConflictErr(
			"past_date",
			"No se puede gestionar una asesoría de una fecha pasada.",
		)
	}

	st, err := ParseResponse(estado)
	if err != nil {
		return err
	}

	a.Estado = string(st)
	if r := strings.TrimSpace(respuesta); r != "" {
		a.RespuestaProgramador = r
	}
	a.RespondidoEn = &now
	return nil
}
