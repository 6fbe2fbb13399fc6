package programador

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

type memDir struct {
	usuarios      map[uuid.UUID]*models.Usuario
	programadores map[uuid.UUID]*models.Programador
	proyectos     map[uuid.UUID]*models.Proyecto

	deleted   []uuid.UUID
	uniqueErr bool
}

var _ directory.Repository = (*memDir)(nil)

func newMemDir() *memDir {
	return &memDir{
		usuarios:      map[uuid.UUID]*models.Usuario{},
		programadores: map[uuid.UUID]*models.Programador{},
		proyectos:     map[uuid.UUID]*models.Proyecto{},
	}
}

func (d *memDir) addUsuario(email, rol string) *models.Usuario {
	u := &models.Usuario{ID: uuid.New(), Nombre: "User", Email: email, Rol: rol}
	d.usuarios[u.ID] = u
	return u
}

func (d *memDir) FindUsuarioByEmail(_ context.Context, email string) (*models.Usuario, error) {
	for _, u := range d.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, directory.ErrNotFound
}

func (d *memDir) GetUsuarioByID(_ context.Context, id uuid.UUID) (*models.Usuario, error) {
	if u, ok := d.usuarios[id]; ok {
		return u, nil
	}
	return nil, directory.ErrNotFound
}

func (d *memDir) CreateUsuario(_ context.Context, u *models.Usuario) error {
	d.usuarios[u.ID] = u
	return nil
}

func (d *memDir) GetProgramadorByID(_ context.Context, id uuid.UUID) (*models.Programador, error) {
	p, ok := d.programadores[id]
	if !ok {
		return nil, directory.ErrNotFound
	}
	cp := *p
	cp.Usuario = d.usuarios[p.UsuarioID]
	return &cp, nil
}

func (d *memDir) GetProgramadorByUsuarioID(ctx context.Context, uid uuid.UUID) (*models.Programador, error) {
	for _, p := range d.programadores {
		if p.UsuarioID == uid {
			return d.GetProgramadorByID(ctx, p.ID)
		}
	}
	return nil, directory.ErrNotFound
}

func (d *memDir) ListProgramadores(context.Context) ([]models.Programador, error) {
	out := []models.Programador{}
	for _, p := range d.programadores {
		out = append(out, *p)
	}
	return out, nil
}

func (d *memDir) CreateProgramador(_ context.Context, u *models.Usuario, p *models.Programador) error {
	if d.uniqueErr {
		return &pgconn.PgError{Code: "23505"}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	p.ID = uuid.New()
	p.UsuarioID = u.ID
	d.usuarios[u.ID] = u
	cp := *p
	d.programadores[p.ID] = &cp
	return nil
}

func (d *memDir) UpdateProgramador(_ context.Context, u *models.Usuario, p *models.Programador) error {
	d.usuarios[u.ID] = u
	cp := *p
	d.programadores[p.ID] = &cp
	return nil
}

func (d *memDir) DeleteProgramador(_ context.Context, p *models.Programador) error {
	for id, pr := range d.proyectos {
		if pr.ProgramadorID == p.ID {
			delete(d.proyectos, id)
		}
	}
	delete(d.programadores, p.ID)
	delete(d.usuarios, p.UsuarioID)
	d.deleted = append(d.deleted, p.ID)
	return nil
}

func (d *memDir) ListProyectos(_ context.Context, pid uuid.UUID) ([]models.Proyecto, error) {
	out := []models.Proyecto{}
	for _, pr := range d.proyectos {
		if pr.ProgramadorID == pid {
			out = append(out, *pr)
		}
	}
	return out, nil
}

func (d *memDir) GetProyecto(_ context.Context, id uuid.UUID) (*models.Proyecto, error) {
	if pr, ok := d.proyectos[id]; ok {
		return pr, nil
	}
	return nil, directory.ErrNotFound
}

func (d *memDir) CreateProyecto(_ context.Context, pr *models.Proyecto) error {
	pr.ID = uuid.New()
	d.proyectos[pr.ID] = pr
	return nil
}

func (d *memDir) DeleteProyecto(_ context.Context, id uuid.UUID) error {
	delete(d.proyectos, id)
	return nil
}

// ------------------------------------------------------

type memStore struct {
	keys []string
	err  error
}

func (s *memStore) Put(_ context.Context, key, contentType string, body []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.keys = append(s.keys, key)
	return "https://cdn.x.dev/" + key, nil
}

func fakeEncode(r io.Reader, _ int) ([]byte, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if string(b) == "garbage" {
		return nil, errors.New("bad image")
	}
	return b, nil
}

func admin() directory.Actor {
	return directory.Actor{UsuarioID: uuid.New(), Rol: models.RolAdmin}
}

func strp(s string) *string { return &s }
