package asesoria

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
)

// Filter é a consulta da visão do programador. Desde/Hasta sempre
// aparecem juntos.
type Filter struct {
	Estado Status
	Desde  *time.Time
	Hasta  *time.Time
}

func (f Filter) HasRange() bool {
	return f.Desde != nil && f.Hasta != nil
}

var errInvalidCombination = httperr.InvalidErr("invalid_filter", "Combinación de filtros no válida.")

// ParseFilter aceita: nada, só estado, desde+hasta, ou os três.
func ParseFilter(estado, desde, hasta string) (Filter, error) {
	var f Filter

	estado = strings.TrimSpace(estado)
	desde = strings.TrimSpace(desde)
	hasta = strings.TrimSpace(hasta)

	if (desde == "") != (hasta == "") {
		return f, errInvalidCombination
	}

	if estado != "" {
		f.Estado = NormalizeStatus(estado)
	}

	if desde != "" {
		d, err := time.Parse(DateLayout, desde)
		if err != nil {
			return Filter{}, httperr.InvalidErr("invalid_date", "Fecha 'desde' inválida.")
		}
		h, err := time.Parse(DateLayout, hasta)
		if err != nil {
			return Filter{}, httperr.InvalidErr("invalid_date", "Fecha 'hasta' inválida.")
		}
		f.Desde = &d
		f.Hasta = &h
	}

	return f, nil
}
