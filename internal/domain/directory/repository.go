package directory

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

var ErrNotFound = errors.New("directory: record not found")

type Repository interface {
	// -------- Usuario --------
	FindUsuarioByEmail(
		ctx context.Context,
		email string,
	) (*models.Usuario, error)

	GetUsuarioByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Usuario, error)

	CreateUsuario(
		ctx context.Context,
		u *models.Usuario,
	) error

	// -------- Programador --------
	GetProgramadorByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Programador, error)

	GetProgramadorByUsuarioID(
		ctx context.Context,
		usuarioID uuid.UUID,
	) (*models.Programador, error)

	ListProgramadores(
		ctx context.Context,
	) ([]models.Programador, error)

	// CreateProgramador grava conta e perfil na mesma transação.
	CreateProgramador(
		ctx context.Context,
		u *models.Usuario,
		p *models.Programador,
	) error

	UpdateProgramador(
		ctx context.Context,
		u *models.Usuario,
		p *models.Programador,
	) error

	// DeleteProgramador remove asesorías, proyectos, perfil e conta.
	DeleteProgramador(
		ctx context.Context,
		p *models.Programador,
	) error

	// -------- Proyecto --------
	ListProyectos(
		ctx context.Context,
		programadorID uuid.UUID,
	) ([]models.Proyecto, error)

	GetProyecto(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Proyecto, error)

	CreateProyecto(
		ctx context.Context,
		p *models.Proyecto,
	) error

	DeleteProyecto(
		ctx context.Context,
		id uuid.UUID,
	) error
}
