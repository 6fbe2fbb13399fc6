package asesoria

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	domain "github.com/BruksfildServices01/mentor-scheduler/internal/domain/asesoria"
	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

// ------------------------------------------------------
// asesorías em memória
// ------------------------------------------------------

type memRepo struct {
	mu      sync.Mutex
	items   map[uuid.UUID]*models.Asesoria
	updates int
	failGet error
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[uuid.UUID]*models.Asesoria{}}
}

func (r *memRepo) put(a models.Asesoria) *models.Asesoria {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.items[a.ID] = &a
	return &a
}

func (r *memRepo) CreateAsesoria(_ context.Context, a *models.Asesoria) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = uuid.New()
	a.CreadoEn = time.Now()
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *memRepo) SlotTaken(_ context.Context, pid uuid.UUID, f datatypes.Date, h datatypes.Time) (bool, error) {
	for _, a := range r.items {
		if a.ProgramadorID == pid &&
			domain.FechaString(a.Fecha) == domain.FechaString(f) &&
			a.Hora == h &&
			a.Estado != string(domain.EstadoRechazada) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) GetAsesoria(_ context.Context, id uuid.UUID) (*models.Asesoria, error) {
	if r.failGet != nil {
		return nil, r.failGet
	}
	a, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memRepo) UpdateAsesoria(_ context.Context, a *models.Asesoria) error {
	r.updates++
	cur := r.items[a.ID]
	cur.Estado = a.Estado
	cur.RespuestaProgramador = a.RespuestaProgramador
	cur.RespondidoEn = a.RespondidoEn
	return nil
}

func sorted(list []models.Asesoria) []models.Asesoria {
	sort.Slice(list, func(i, j int) bool {
		fi, fj := domain.FechaString(list[i].Fecha), domain.FechaString(list[j].Fecha)
		if fi != fj {
			return fi < fj
		}
		return list[i].Hora < list[j].Hora
	})
	return list
}

func (r *memRepo) ListByProgramador(_ context.Context, pid uuid.UUID, f domain.Filter) ([]models.Asesoria, error) {
	out := []models.Asesoria{}
	for _, a := range r.items {
		if a.ProgramadorID != pid {
			continue
		}
		if f.Estado != "" && a.Estado != string(f.Estado) {
			continue
		}
		if f.HasRange() {
			d := domain.FechaString(a.Fecha)
			if d < f.Desde.Format(domain.DateLayout) || d > f.Hasta.Format(domain.DateLayout) {
				continue
			}
		}
		out = append(out, *a)
	}
	return sorted(out), nil
}

func (r *memRepo) ListByUsuario(_ context.Context, uid uuid.UUID) ([]models.Asesoria, error) {
	out := []models.Asesoria{}
	for _, a := range r.items {
		if a.UsuarioID != nil && *a.UsuarioID == uid {
			out = append(out, *a)
		}
	}
	return sorted(out), nil
}

func (r *memRepo) ListForDate(_ context.Context, pid uuid.UUID, fecha time.Time, exclude ...domain.Status) ([]models.Asesoria, error) {
	out := []models.Asesoria{}
outer:
	for _, a := range r.items {
		if a.ProgramadorID != pid || domain.FechaString(a.Fecha) != fecha.Format(domain.DateLayout) {
			continue
		}
		for _, s := range exclude {
			if a.Estado == string(s) {
				continue outer
			}
		}
		out = append(out, *a)
	}
	return sorted(out), nil
}

func (r *memRepo) Stats(_ context.Context, pid uuid.UUID) (*domain.Stats, error) {
	st := &domain.Stats{PorFecha: []domain.DayCount{}}
	for _, a := range r.items {
		if a.ProgramadorID == pid {
			st.Total++
		}
	}
	return st, nil
}

// ------------------------------------------------------
// diretório em memória
// ------------------------------------------------------

type memDir struct {
	directory.Repository

	usuarios      map[uuid.UUID]*models.Usuario
	programadores map[uuid.UUID]*models.Programador
}

func newMemDir() *memDir {
	return &memDir{
		usuarios:      map[uuid.UUID]*models.Usuario{},
		programadores: map[uuid.UUID]*models.Programador{},
	}
}

func (d *memDir) addUsuario(email, rol string) *models.Usuario {
	u := &models.Usuario{ID: uuid.New(), Nombre: "User " + email, Email: email, Rol: rol}
	d.usuarios[u.ID] = u
	return u
}

func (d *memDir) addProgramador(horas ...string) (*models.Programador, *models.Usuario) {
	u := d.addUsuario(uuid.NewString()+"@dev.x", models.RolProgramador)
	p := &models.Programador{ID: uuid.New(), UsuarioID: u.ID, Usuario: u, HorasDisponibles: horas}
	d.programadores[p.ID] = p
	return p, u
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

func (d *memDir) GetProgramadorByID(_ context.Context, id uuid.UUID) (*models.Programador, error) {
	if p, ok := d.programadores[id]; ok {
		return p, nil
	}
	return nil, directory.ErrNotFound
}

func (d *memDir) GetProgramadorByUsuarioID(_ context.Context, uid uuid.UUID) (*models.Programador, error) {
	for _, p := range d.programadores {
		if p.UsuarioID == uid {
			return p, nil
		}
	}
	return nil, directory.ErrNotFound
}

// ------------------------------------------------------
// notifier
// ------------------------------------------------------

type sentMail struct {
	To, Subject, Body string
}

type fakeNotifier struct {
	sent []sentMail
	err  error
}

func (n *fakeNotifier) Send(_ context.Context, to, subject, body string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentMail{to, subject, body})
	return nil
}

var errBoom = errors.New("boom")

func actorFor(u *models.Usuario) directory.Actor {
	return directory.Actor{UsuarioID: u.ID, Email: u.Email, Rol: u.Rol}
}
