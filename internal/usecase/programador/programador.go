package programador

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/mentor-scheduler/internal/audit"
	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ProfileInput struct {
	Nombre         string
	Descripcion    string
	Especialidad   string
	EmailContacto  string
	Github         string
	Linkedin       string
	Portafolio     string
	Whatsapp       string
	Disponibilidad string

	// HorasDisponibles nil = campo ausente no formulário.
	HorasDisponibles *string

	Avatar *AvatarUpload
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	dir             directory.Repository
	audit           *audit.Dispatcher
	avatars         avatars
	defaultPassword string
}

func NewService(
	dir directory.Repository,
	store AvatarStore,
	audit *audit.Dispatcher,
	defaultPassword string,
) *Service {
	return &Service{
		dir:             dir,
		audit:           audit,
		avatars:         avatars{store: store},
		defaultPassword: defaultPassword,
	}
}

func notFound() error {
	return httperr.NotFoundErr("programador_not_found", "Programador no encontrado.")
}

func (s *Service) List(ctx context.Context) ([]models.Programador, error) {
	return s.dir.ListProgramadores(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Programador, error) {
	p, err := s.dir.GetProgramadorByID(ctx, id)
	if errors.Is(err, directory.ErrNotFound) {
		return nil, notFound()
	}
	return p, err
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (s *Service) Create(
	ctx context.Context,
	actor directory.Actor,
	in ProfileInput,
) (*models.Programador, error) {

	if !actor.IsAdmin() {
		return nil, httperr.ForbiddenErr("admin_only", "Solo un administrador puede crear programadores.")
	}

	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, httperr.InvalidErr("nombre_required", "El nombre es obligatorio.")
	}

	horas := []string{}
	if in.HorasDisponibles != nil {
		parsed, err := directory.ParseHorasDisponibles(*in.HorasDisponibles)
		if err != nil {
			return nil, err
		}
		horas = parsed
	}

	// login = email de contato, ou um temporário
	email := strings.TrimSpace(in.EmailContacto)
	if email == "" {
		email = directory.PlaceholderEmail()
	}

	if _, err := s.dir.FindUsuarioByEmail(ctx, email); err == nil {
		return nil, duplicateEmail(email)
	} else if !errors.Is(err, directory.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.Usuario{
		ID:           uuid.New(),
		Nombre:       nombre,
		Email:        email,
		Rol:          models.RolProgramador,
		PasswordHash: string(hash),
		Activo:       true,
	}

	foto, err := s.avatars.resolve(ctx, u.ID, nombre, in.Avatar)
	if err != nil {
		return nil, err
	}
	u.FotoURL = foto

	p := &models.Programador{}
	applyProfile(p, in)
	p.HorasDisponibles = horas

	if err := s.dir.CreateProgramador(ctx, u, p); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, duplicateEmail(email)
		}
		return nil, err
	}
	p.Usuario = u

	s.audit.Dispatch(audit.Event{
		ProgramadorID: &p.ID,
		UsuarioID:     &actor.UsuarioID,
		Action:        audit.ActionProgramadorCreado,
		Entity:        "programador",
		EntityID:      &p.ID,
	})

	return p, nil
}

func duplicateEmail(email string) error {
	return httperr.InvalidErr("email_taken", fmt.Sprintf("Error: El email %s ya está registrado.", email))
}

// --------------------------------------------------
// Update
// --------------------------------------------------

func (s *Service) Update(
	ctx context.Context,
	actor directory.Actor,
	id uuid.UUID,
	in ProfileInput,
) (*models.Programador, error) {

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && p.UsuarioID != actor.UsuarioID {
		return nil, httperr.ForbiddenErr("not_owner", "No puedes editar este perfil.")
	}

	if in.HorasDisponibles != nil {
		horas, err := directory.ParseHorasDisponibles(*in.HorasDisponibles)
		if err != nil {
			return nil, err
		}
		p.HorasDisponibles = horas
	}

	applyProfile(p, in)

	u := p.Usuario
	if u == nil {
		if u, err = s.dir.GetUsuarioByID(ctx, p.UsuarioID); err != nil {
			return nil, err
		}
	}

	if nombre := strings.TrimSpace(in.Nombre); nombre != "" {
		u.Nombre = nombre
	}

	foto, err := s.avatars.resolve(ctx, u.ID, u.Nombre, in.Avatar)
	if err != nil {
		return nil, err
	}
	if foto != "" {
		u.FotoURL = foto
	}

	if err := s.dir.UpdateProgramador(ctx, u, p); err != nil {
		return nil, err
	}
	p.Usuario = u

	s.audit.Dispatch(audit.Event{
		ProgramadorID: &p.ID,
		UsuarioID:     &actor.UsuarioID,
		Action:        audit.ActionProgramadorEditado,
		Entity:        "programador",
		EntityID:      &p.ID,
	})

	return p, nil
}

func applyProfile(p *models.Programador, in ProfileInput) {
	p.Descripcion = in.Descripcion
	p.Especialidad = in.Especialidad
	p.EmailContacto = strings.TrimSpace(in.EmailContacto)
	p.Github = in.Github
	p.Linkedin = in.Linkedin
	p.Portafolio = in.Portafolio
	p.Whatsapp = in.Whatsapp
	p.DisponibilidadTexto = in.Disponibilidad
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func (s *Service) Delete(
	ctx context.Context,
	actor directory.Actor,
	id uuid.UUID,
) error {

	if !actor.IsAdmin() {
		return httperr.ForbiddenErr("admin_only", "Solo un administrador puede eliminar programadores.")
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.dir.DeleteProgramador(ctx, p); err != nil {
		return err
	}

	// programador_id fica nil: o perfil não existe mais
	s.audit.Dispatch(audit.Event{
		UsuarioID: &actor.UsuarioID,
		Action:    audit.ActionProgramadorBorrado,
		Entity:    "programador",
		EntityID:  &p.ID,
		Metadata:  map[string]string{"email": emailOf(p)},
	})

	return nil
}

func emailOf(p *models.Programador) string {
	if p.Usuario == nil {
		return ""
	}
	return p.Usuario.Email
}
