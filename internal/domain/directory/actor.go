package directory

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

// Actor é quem está chamando; vem das claims do JWT.
type Actor struct {
	UsuarioID uuid.UUID
	Email     string
	Rol       string
}

func (a Actor) IsAdmin() bool {
	return a.Rol == models.RolAdmin
}

func (a Actor) Authenticated() bool {
	return a.UsuarioID != uuid.Nil
}
