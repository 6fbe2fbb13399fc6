package asesoria

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/mentor-scheduler/internal/domain/asesoria"
	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
	"github.com/BruksfildServices01/mentor-scheduler/internal/timezone"
)

// ======================================================
// Visão do programador
// ======================================================

type ListForProgramador struct {
	repo domain.Repository
	dir  directory.Repository
}

func NewListForProgramador(
	repo domain.Repository,
	dir directory.Repository,
) *ListForProgramador {
	return &ListForProgramador{repo: repo, dir: dir}
}

func (uc *ListForProgramador) Execute(
	ctx context.Context,
	actor directory.Actor,
	f domain.Filter,
) ([]models.Asesoria, error) {

	p, err := ownProgramador(ctx, uc.dir, actor)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListByProgramador(ctx, p.ID, f)
}

// ======================================================
// Visão do solicitante
// ======================================================

type ListMine struct {
	repo domain.Repository
}

func NewListMine(repo domain.Repository) *ListMine {
	return &ListMine{repo: repo}
}

func (uc *ListMine) Execute(
	ctx context.Context,
	actor directory.Actor,
) ([]models.Asesoria, error) {
	return uc.repo.ListByUsuario(ctx, actor.UsuarioID)
}

// ======================================================
// Horários (público)
// ======================================================

type Schedule struct {
	repo domain.Repository
	dir  directory.Repository
}

func NewSchedule(
	repo domain.Repository,
	dir directory.Repository,
) *Schedule {
	return &Schedule{repo: repo, dir: dir}
}

func parseDay(raw string) (time.Time, error) {
	f, err := domain.ParseFecha(raw, timezone.Default())
	if err != nil {
		return time.Time{}, err
	}
	return time.Time(f), nil
}

// Occupied: pendentes e aprovadas ocupam o horário; rejeitadas não.
func (uc *Schedule) Occupied(
	ctx context.Context,
	programadorID uuid.UUID,
	fecha string,
) ([]models.Asesoria, error) {

	day, err := parseDay(fecha)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListForDate(ctx, programadorID, day, domain.EstadoRechazada)
}

// FreeSlots cruza horasDisponibles com o que ocupa o dia; rejeitadas liberam o horário.
func (uc *Schedule) FreeSlots(
	ctx context.Context,
	programadorID uuid.UUID,
	fecha string,
) ([]string, error) {

	p, err := uc.dir.GetProgramadorByID(ctx, programadorID)
	if errors.Is(err, directory.ErrNotFound) {
		return nil, httperr.NotFoundErr("programador_not_found", "Programador no encontrado.")
	}
	if err != nil {
		return nil, err
	}

	day, err := parseDay(fecha)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListForDate(ctx, p.ID, day, domain.EstadoRechazada)
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(p.HorasDisponibles, booked), nil
}

// ======================================================
// Estatísticas
// ======================================================

type GetStats struct {
	repo domain.Repository
	dir  directory.Repository
}

func NewGetStats(
	repo domain.Repository,
	dir directory.Repository,
) *GetStats {
	return &GetStats{repo: repo, dir: dir}
}

func (uc *GetStats) Execute(
	ctx context.Context,
	actor directory.Actor,
) (*domain.Stats, error) {

	p, err := ownProgramador(ctx, uc.dir, actor)
	if err != nil {
		return nil, err
	}
	return uc.repo.Stats(ctx, p.ID)
}
