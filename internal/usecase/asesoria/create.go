package asesoria

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/mentor-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/mentor-scheduler/internal/domain/asesoria"
	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
	"github.com/BruksfildServices01/mentor-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ProgramadorID uuid.UUID

	NombreSolicitante   string
	EmailSolicitante    string
	TelefonoSolicitante string

	Fecha      string
	Hora       string
	Comentario string

	// Actor é nil no fluxo público.
	Actor *directory.Actor
}

// ======================================================
// USE CASE
// ======================================================

type CreateAsesoria struct {
	repo  domain.Repository
	dir   directory.Repository
	audit *audit.Dispatcher
}

func NewCreateAsesoria(
	repo domain.Repository,
	dir directory.Repository,
	audit *audit.Dispatcher,
) *CreateAsesoria {
	return &CreateAsesoria{
		repo:  repo,
		dir:   dir,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAsesoria) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Asesoria, error) {

	// --------------------------------------------------
	// 1️⃣ Programador
	// --------------------------------------------------
	p, err := uc.dir.GetProgramadorByID(ctx, in.ProgramadorID)
	if errors.Is(err, directory.ErrNotFound) {
		return nil, httperr.NotFoundErr("programador_not_found", "Programador no encontrado.")
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora
	// --------------------------------------------------
	fecha, err := domain.ParseFecha(in.Fecha, timezone.Default())
	if err != nil {
		return nil, err
	}

	hora, err := domain.ParseHora(in.Hora)
	if err != nil {
		return nil, err
	}

	a := &models.Asesoria{
		ProgramadorID:       p.ID,
		NombreSolicitante:   strings.TrimSpace(in.NombreSolicitante),
		EmailSolicitante:    strings.TrimSpace(in.EmailSolicitante),
		TelefonoSolicitante: strings.TrimSpace(in.TelefonoSolicitante),
		Fecha:               fecha,
		Hora:                hora,
		Comentario:          in.Comentario,
		Estado:              string(domain.InitialStatus()),
	}

	// --------------------------------------------------
	// 3️⃣ Solicitante (conta autenticada ou vínculo por email)
	// --------------------------------------------------
	if err := uc.linkRequester(ctx, a, in.Actor); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Horário livre
	// --------------------------------------------------
	taken, err := uc.repo.SlotTaken(ctx, a.ProgramadorID, a.Fecha, a.Hora)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ConflictErr("slot_taken", "Ese horario ya está reservado.")
	}

	if err := uc.repo.CreateAsesoria(ctx, a); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ProgramadorID: &a.ProgramadorID,
		UsuarioID:     a.UsuarioID,
		Action:        audit.ActionAsesoriaCreada,
		Entity:        "asesoria",
		EntityID:      &a.ID,
		Metadata: map[string]string{
			"fecha": domain.FechaString(a.Fecha),
			"hora":  domain.HoraString(a.Hora),
		},
	})

	return a, nil
}

func (uc *CreateAsesoria) linkRequester(
	ctx context.Context,
	a *models.Asesoria,
	actor *directory.Actor,
) error {

	if actor != nil && actor.Authenticated() {
		u, err := uc.dir.GetUsuarioByID(ctx, actor.UsuarioID)
		if errors.Is(err, directory.ErrNotFound) {
			return httperr.NotFoundErr("usuario_not_found", "Usuario no encontrado.")
		}
		if err != nil {
			return err
		}

		a.UsuarioID = &u.ID
		if a.NombreSolicitante == "" {
			a.NombreSolicitante = u.Nombre
		}
		if a.EmailSolicitante == "" {
			a.EmailSolicitante = u.Email
		}
		return nil
	}

	if a.EmailSolicitante == "" {
		return nil
	}

	// vínculo best-effort: só se o email bater exatamente
	u, err := uc.dir.FindUsuarioByEmail(ctx, a.EmailSolicitante)
	if errors.Is(err, directory.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	a.UsuarioID = &u.ID
	return nil
}
