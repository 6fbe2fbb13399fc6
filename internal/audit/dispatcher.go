package audit

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/mentor-scheduler/internal/logger"
)

const (
	ActionAsesoriaCreada     = "asesoria_creada"
	ActionAsesoriaAprobada   = "asesoria_aprobada"
	ActionAsesoriaRechazada  = "asesoria_rechazada"
	ActionProgramadorCreado  = "programador_creado"
	ActionProgramadorEditado = "programador_editado"
	ActionProgramadorBorrado = "programador_eliminado"
	ActionProyectoCreado     = "proyecto_creado"
	ActionProyectoBorrado    = "proyecto_eliminado"
)

type Event struct {
	ProgramadorID *uuid.UUID
	UsuarioID     *uuid.UUID
	Action        string
	Entity        string
	EntityID      *uuid.UUID
	Metadata      any
}

type writer interface {
	Write(ev Event) error
}

type Dispatcher struct {
	w     writer
	queue chan Event
	wg    sync.WaitGroup
	once  sync.Once
}

func NewDispatcher(w writer) *Dispatcher {
	return newDispatcher(w, 100)
}

func newDispatcher(w writer, size int) *Dispatcher {
	d := &Dispatcher{
		w:     w,
		queue: make(chan Event, size),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		if err := d.w.Write(ev); err != nil {
			logger.L().Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

// Dispatch nunca bloqueia a requisição. Dispatcher nil é no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		logger.L().Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close drena a fila; chamado no shutdown.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.once.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}
