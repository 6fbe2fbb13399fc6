package asesoria

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

// ownProgramador resolve o perfil de programador da conta chamadora.
func ownProgramador(
	ctx context.Context,
	dir directory.Repository,
	actor directory.Actor,
) (*models.Programador, error) {

	p, err := dir.GetProgramadorByUsuarioID(ctx, actor.UsuarioID)
	if errors.Is(err, directory.ErrNotFound) {
		return nil, httperr.ForbiddenErr("not_programmer", "No tienes un perfil de programador.")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
