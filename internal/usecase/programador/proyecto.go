package programador

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/mentor-scheduler/internal/audit"
	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

type ProyectoInput struct {
	Titulo      string
	Descripcion string
	Tecnologias string
	URLDemo     string
	URLRepo     string
	Estado      string
}

func (s *Service) ListProyectos(ctx context.Context, programadorID uuid.UUID) ([]models.Proyecto, error) {
	if _, err := s.Get(ctx, programadorID); err != nil {
		return nil, err
	}
	return s.dir.ListProyectos(ctx, programadorID)
}

func (s *Service) ownProfile(ctx context.Context, actor directory.Actor) (*models.Programador, error) {
	p, err := s.dir.GetProgramadorByUsuarioID(ctx, actor.UsuarioID)
	if errors.Is(err, directory.ErrNotFound) {
		return nil, httperr.ForbiddenErr("not_programmer", "No tienes un perfil de programador.")
	}
	return p, err
}

func (s *Service) CreateProyecto(
	ctx context.Context,
	actor directory.Actor,
	in ProyectoInput,
) (*models.Proyecto, error) {

	p, err := s.ownProfile(ctx, actor)
	if err != nil {
		return nil, err
	}

	titulo := strings.TrimSpace(in.Titulo)
	if titulo == "" {
		return nil, httperr.InvalidErr("titulo_required", "El título es obligatorio.")
	}

	estado := strings.TrimSpace(in.Estado)
	if estado == "" {
		estado = "publicado"
	}

	pr := &models.Proyecto{
		ProgramadorID: p.ID,
		Titulo:        titulo,
		Descripcion:   in.Descripcion,
		Tecnologias:   in.Tecnologias,
		URLDemo:       in.URLDemo,
		URLRepo:       in.URLRepo,
		Estado:        estado,
	}

	if err := s.dir.CreateProyecto(ctx, pr); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		ProgramadorID: &p.ID,
		UsuarioID:     &actor.UsuarioID,
		Action:        audit.ActionProyectoCreado,
		Entity:        "proyecto",
		EntityID:      &pr.ID,
	})

	return pr, nil
}

func (s *Service) DeleteProyecto(
	ctx context.Context,
	actor directory.Actor,
	id uuid.UUID,
) error {

	pr, err := s.dir.GetProyecto(ctx, id)
	if errors.Is(err, directory.ErrNotFound) {
		return httperr.NotFoundErr("proyecto_not_found", "Proyecto no encontrado.")
	}
	if err != nil {
		return err
	}

	p, err := s.ownProfile(ctx, actor)
	if err != nil {
		return err
	}
	if pr.ProgramadorID != p.ID {
		return httperr.ForbiddenErr("not_owner", "No puedes eliminar proyectos de otro programador.")
	}

	if err := s.dir.DeleteProyecto(ctx, id); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		ProgramadorID: &p.ID,
		UsuarioID:     &actor.UsuarioID,
		Action:        audit.ActionProyectoBorrado,
		Entity:        "proyecto",
		EntityID:      &pr.ID,
	})
	return nil
}
