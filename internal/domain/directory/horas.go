package directory

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
)

var hhmm = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func IsHHMM(s string) bool {
	return hhmm.MatchString(s)
}

// ParseHorasDisponibles lê a lista JSON vinda do formulário multipart.
// "undefined" e vazio viram lista vazia.
func ParseHorasDisponibles(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "undefined" || raw == "null" {
		return []string{}, nil
	}

	var horas []string
	if err := json.Unmarshal([]byte(raw), &horas); err != nil {
		return nil, httperr.InvalidErr("invalid_horas", "horasDisponibles debe ser una lista JSON de horas.")
	}

	out := make([]string, 0, len(horas))
	for _, h := range horas {
		h = strings.TrimSpace(h)
		if len(h) > 5 {
			h = h[:5]
		}
		if !IsHHMM(h) {
			return nil, httperr.InvalidErr("invalid_horas", "Hora inválida en horasDisponibles: "+h)
		}
		out = append(out, h)
	}
	return out, nil
}
