package asesoria

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/mentor-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/mentor-scheduler/internal/domain/asesoria"
	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/logger"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
	"github.com/BruksfildServices01/mentor-scheduler/internal/timezone"
)

const (
	WarningNoEmail   = "Estado actualizado, pero no hay email de contacto."
	warningMailError = "Estado guardado, pero falló el correo: %s"
)

type RespondInput struct {
	Estado    string
	Respuesta string
}

type RespondResult struct {
	Asesoria *models.Asesoria
	Warning  string
}

// RespondAsesoria aprova ou rejeita uma asesoría pendente do programador.
type RespondAsesoria struct {
	repo     domain.Repository
	dir      directory.Repository
	notifier domain.Notifier
	audit    *audit.Dispatcher

	Now func() time.Time
}

func NewRespondAsesoria(
	repo domain.Repository,
	dir directory.Repository,
	notifier domain.Notifier,
	audit *audit.Dispatcher,
) *RespondAsesoria {
	return &RespondAsesoria{
		repo:     repo,
		dir:      dir,
		notifier: notifier,
		audit:    audit,
		Now:      time.Now,
	}
}

func (uc *RespondAsesoria) Execute(
	ctx context.Context,
	actor directory.Actor,
	id uuid.UUID,
	in RespondInput,
) (*RespondResult, error) {

	a, err := uc.repo.GetAsesoria(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("asesoria_not_found", "Asesoría no encontrada.")
	}
	if err != nil {
		return nil, err
	}

	p, err := ownProgramador(ctx, uc.dir, actor)
	if err != nil {
		return nil, err
	}
	if p.ID != a.ProgramadorID {
		return nil, httperr.ForbiddenErr("not_owner", "No puedes gestionar asesorías de otro programador.")
	}

	now := uc.Now().In(timezone.Default())
	if err := domain.Respond(a, in.Estado, in.Respuesta, timezone.Today(now), now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAsesoria(ctx, a); err != nil {
		return nil, err
	}

	action := audit.ActionAsesoriaAprobada
	if a.Estado == string(domain.EstadoRechazada) {
		action = audit.ActionAsesoriaRechazada
	}
	uc.audit.Dispatch(audit.Event{
		ProgramadorID: &p.ID,
		UsuarioID:     &actor.UsuarioID,
		Action:        action,
		Entity:        "asesoria",
		EntityID:      &a.ID,
	})

	return &RespondResult{Asesoria: a, Warning: uc.notify(ctx, a)}, nil
}

// notify nunca falha a requisição; problemas viram warning.
func (uc *RespondAsesoria) notify(ctx context.Context, a *models.Asesoria) string {
	to := strings.TrimSpace(a.EmailSolicitante)
	if to == "" {
		return WarningNoEmail
	}

	if err := uc.notifier.Send(ctx, to, Subject(a.Estado), Body(a)); err != nil {
		logger.L().Warn("notification failed",
			zap.String("asesoria_id", a.ID.String()),
			zap.Error(err),
		)
		return fmt.Sprintf(warningMailError, err.Error())
	}
	return ""
}

func Subject(estado string) string {
	if estado == string(domain.EstadoAprobada) {
		return "✅ Tu asesoría fue aprobada"
	}
	return "❌ Tu asesoría fue rechazada"
}

func Body(a *models.Asesoria) string {
	if r := strings.TrimSpace(a.RespuestaProgramador); r != "" {
		return r
	}
	return fmt.Sprintf(
		"Hola, tu solicitud de asesoría para el día %s a las %s ha sido: %s.",
		domain.FechaString(a.Fecha),
		domain.HoraString(a.Hora),
		a.Estado,
	)
}
