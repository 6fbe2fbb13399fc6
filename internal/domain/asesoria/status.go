package asesoria

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
)

// ===============================
// Estado da asesoría
// ===============================

type Status string

const (
	EstadoPendiente Status = "pendiente"
	EstadoAprobada  Status = "aprobada"
	EstadoRechazada Status = "rechazada"
)

func InitialStatus() Status {
	return EstadoPendiente
}

func NormalizeStatus(s string) Status {
	return Status(strings.ToLower(strings.TrimSpace(s)))
}

// ParseResponse valida o estado enviado pelo programador ao responder.
func ParseResponse(raw string) (Status, error) {
	st := NormalizeStatus(raw)
	switch st {
	case EstadoAprobada, EstadoRechazada:
		return st, nil
	}
	return "", httperr.InvalidErr(
		"invalid_estado",
		"Estado inválido. Use 'aprobada' o 'rechazada'.",
	)
}

// ===============================
// Validações
// ===============================

// CanRespond só aceita asesorías ainda pendentes.
func CanRespond(current Status) error {
	if current != EstadoPendiente {
		return httperr.ConflictErr(
			"already_processed",
			fmt.Sprintf("Esta asesoría ya fue procesada (%s) y no puede modificarse.", current),
		)
	}
	return nil
}
