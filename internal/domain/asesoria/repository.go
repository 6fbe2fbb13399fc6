package asesoria

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

var ErrNotFound = errors.New("asesoria: not found")

type DayCount struct {
	Fecha string `json:"fecha"`
	Total int64  `json:"total"`
}

type Stats struct {
	Total     int64      `json:"total"`
	Pendiente int64      `json:"pendientes"`
	Aprobada  int64      `json:"aprobadas"`
	Rechazada int64      `json:"rechazadas"`
	PorFecha  []DayCount `json:"por_fecha"`
}

type Repository interface {
	// -------- Create --------
	CreateAsesoria(
		ctx context.Context,
		a *models.Asesoria,
	) error

	// SlotTaken: existe asesoría não rejeitada no mesmo horário?
	SlotTaken(
		ctx context.Context,
		programadorID uuid.UUID,
		fecha datatypes.Date,
		hora datatypes.Time,
	) (bool, error)

	// -------- State change --------
	GetAsesoria(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Asesoria, error)

	UpdateAsesoria(
		ctx context.Context,
		a *models.Asesoria,
	) error

	// -------- Reads --------
	ListByProgramador(
		ctx context.Context,
		programadorID uuid.UUID,
		f Filter,
	) ([]models.Asesoria, error)

	ListByUsuario(
		ctx context.Context,
		usuarioID uuid.UUID,
	) ([]models.Asesoria, error)

	// ListForDate lista o dia inteiro; estados em `exclude` ficam de fora.
	ListForDate(
		ctx context.Context,
		programadorID uuid.UUID,
		fecha time.Time,
		exclude ...Status,
	) ([]models.Asesoria, error)

	Stats(
		ctx context.Context,
		programadorID uuid.UUID,
	) (*Stats, error)
}

// Notifier envia o e-mail de resposta ao solicitante.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}
