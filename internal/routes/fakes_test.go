package routes

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	domain "github.com/BruksfildServices01/mentor-scheduler/internal/domain/asesoria"
	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

// ------------------------------------------------------
// asesorías
// ------------------------------------------------------

type memAsesorias struct {
	mu    sync.Mutex
	items map[uuid.UUID]*models.Asesoria
}

var _ domain.Repository = (*memAsesorias)(nil)

func newMemAsesorias() *memAsesorias {
	return &memAsesorias{items: map[uuid.UUID]*models.Asesoria{}}
}

func (r *memAsesorias) CreateAsesoria(_ context.Context, a *models.Asesoria) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreadoEn = time.Now()
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *memAsesorias) SlotTaken(_ context.Context, pid uuid.UUID, f datatypes.Date, h datatypes.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
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

func (r *memAsesorias) GetAsesoria(_ context.Context, id uuid.UUID) (*models.Asesoria, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memAsesorias) UpdateAsesoria(_ context.Context, a *models.Asesoria) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *memAsesorias) filter(keep func(*models.Asesoria) bool) []models.Asesoria {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Asesoria{}
	for _, a := range r.items {
		if keep(a) {
			out = append(out, *a)
		}
	}
	return out
}

func (r *memAsesorias) ListByProgramador(_ context.Context, pid uuid.UUID, f domain.Filter) ([]models.Asesoria, error) {
	return r.filter(func(a *models.Asesoria) bool {
		if a.ProgramadorID != pid {
			return false
		}
		return f.Estado == "" || a.Estado == string(f.Estado)
	}), nil
}

func (r *memAsesorias) ListByUsuario(_ context.Context, uid uuid.UUID) ([]models.Asesoria, error) {
	return r.filter(func(a *models.Asesoria) bool {
		return a.UsuarioID != nil && *a.UsuarioID == uid
	}), nil
}

func (r *memAsesorias) ListForDate(_ context.Context, pid uuid.UUID, fecha time.Time, exclude ...domain.Status) ([]models.Asesoria, error) {
	day := fecha.Format(domain.DateLayout)
	return r.filter(func(a *models.Asesoria) bool {
		if a.ProgramadorID != pid || domain.FechaString(a.Fecha) != day {
			return false
		}
		for _, s := range exclude {
			if a.Estado == string(s) {
				return false
			}
		}
		return true
	}), nil
}

func (r *memAsesorias) Stats(_ context.Context, pid uuid.UUID) (*domain.Stats, error) {
	st := &domain.Stats{PorFecha: []domain.DayCount{}}
	for _, a := range r.filter(func(a *models.Asesoria) bool { return a.ProgramadorID == pid }) {
		st.Total++
		switch domain.Status(a.Estado) {
		case domain.EstadoPendiente:
			st.Pendiente++
		case domain.EstadoAprobada:
			st.Aprobada++
		case domain.EstadoRechazada:
			st.Rechazada++
		}
	}
	return st, nil
}

// ------------------------------------------------------
// diretório
// ------------------------------------------------------

type memDirectory struct {
	mu            sync.Mutex
	usuarios      map[uuid.UUID]*models.Usuario
	programadores map[uuid.UUID]*models.Programador
	proyectos     map[uuid.UUID]*models.Proyecto
}

var _ directory.Repository = (*memDirectory)(nil)

func newMemDirectory() *memDirectory {
	return &memDirectory{
		usuarios:      map[uuid.UUID]*models.Usuario{},
		programadores: map[uuid.UUID]*models.Programador{},
		proyectos:     map[uuid.UUID]*models.Proyecto{},
	}
}

func (d *memDirectory) FindUsuarioByEmail(_ context.Context, email string) (*models.Usuario, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range d.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, directory.ErrNotFound
}

func (d *memDirectory) GetUsuarioByID(_ context.Context, id uuid.UUID) (*models.Usuario, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if u, ok := d.usuarios[id]; ok {
		return u, nil
	}
	return nil, directory.ErrNotFound
}

func (d *memDirectory) CreateUsuario(_ context.Context, u *models.Usuario) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	d.usuarios[u.ID] = u
	return nil
}

func (d *memDirectory) GetProgramadorByID(_ context.Context, id uuid.UUID) (*models.Programador, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.programadores[id]
	if !ok {
		return nil, directory.ErrNotFound
	}
	cp := *p
	cp.Usuario = d.usuarios[p.UsuarioID]
	return &cp, nil
}

func (d *memDirectory) GetProgramadorByUsuarioID(ctx context.Context, uid uuid.UUID) (*models.Programador, error) {
	d.mu.Lock()
	var id uuid.UUID
	for _, p := range d.programadores {
		if p.UsuarioID == uid {
			id = p.ID
		}
	}
	d.mu.Unlock()
	if id == uuid.Nil {
		return nil, directory.ErrNotFound
	}
	return d.GetProgramadorByID(ctx, id)
}

func (d *memDirectory) ListProgramadores(context.Context) ([]models.Programador, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := []models.Programador{}
	for _, p := range d.programadores {
		cp := *p
		cp.Usuario = d.usuarios[p.UsuarioID]
		out = append(out, cp)
	}
	return out, nil
}

func (d *memDirectory) CreateProgramador(_ context.Context, u *models.Usuario, p *models.Programador) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.UsuarioID = u.ID
	d.usuarios[u.ID] = u
	cp := *p
	d.programadores[p.ID] = &cp
	return nil
}

func (d *memDirectory) UpdateProgramador(_ context.Context, u *models.Usuario, p *models.Programador) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.usuarios[u.ID] = u
	cp := *p
	d.programadores[p.ID] = &cp
	return nil
}

func (d *memDirectory) DeleteProgramador(_ context.Context, p *models.Programador) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.programadores, p.ID)
	delete(d.usuarios, p.UsuarioID)
	return nil
}

func (d *memDirectory) ListProyectos(_ context.Context, pid uuid.UUID) ([]models.Proyecto, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := []models.Proyecto{}
	for _, pr := range d.proyectos {
		if pr.ProgramadorID == pid {
			out = append(out, *pr)
		}
	}
	return out, nil
}

func (d *memDirectory) GetProyecto(_ context.Context, id uuid.UUID) (*models.Proyecto, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if pr, ok := d.proyectos[id]; ok {
		return pr, nil
	}
	return nil, directory.ErrNotFound
}

func (d *memDirectory) CreateProyecto(_ context.Context, pr *models.Proyecto) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if pr.ID == uuid.Nil {
		pr.ID = uuid.New()
	}
	d.proyectos[pr.ID] = pr
	return nil
}

func (d *memDirectory) DeleteProyecto(_ context.Context, id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.proyectos, id)
	return nil
}

// ------------------------------------------------------
// notifier
// ------------------------------------------------------

type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (n *recordingNotifier) Send(_ context.Context, to, _, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, to)
	return nil
}
