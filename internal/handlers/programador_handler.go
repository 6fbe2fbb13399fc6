package handlers

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/mentor-scheduler/internal/dto"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/mentor-scheduler/internal/middleware"
	ucasesoria "github.com/BruksfildServices01/mentor-scheduler/internal/usecase/asesoria"
	ucprog "github.com/BruksfildServices01/mentor-scheduler/internal/usecase/programador"
)

type ProgramadorHandler struct {
	svc      *ucprog.Service
	schedule *ucasesoria.Schedule
}

func NewProgramadorHandler(svc *ucprog.Service, schedule *ucasesoria.Schedule) *ProgramadorHandler {
	return &ProgramadorHandler{svc: svc, schedule: schedule}
}

// GET /api/programadores
func (h *ProgramadorHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewProgramadorList(list))
}

// GET /api/programadores/:id
func (h *ProgramadorHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewProgramadorDTO(p))
}

// GET /api/programadores/:id/slots?fecha=YYYY-MM-DD
func (h *ProgramadorHandler) Slots(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	fecha := c.Query("fecha")
	if fecha == "" {
		httperr.BadRequest(c, "fecha_required", "El parámetro 'fecha' es obligatorio.")
		return
	}

	slots, err := h.schedule.FreeSlots(c.Request.Context(), id, fecha)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, slots)
}

// --------------------------------------------------
// multipart
// --------------------------------------------------

func profileInput(c *gin.Context) (ucprog.ProfileInput, func(), error) {
	in := ucprog.ProfileInput{
		Nombre:         c.PostForm("nombre"),
		Descripcion:    c.PostForm("descripcion"),
		Especialidad:   c.PostForm("especialidad"),
		EmailContacto:  c.PostForm("emailContacto"),
		Github:         c.PostForm("github"),
		Linkedin:       c.PostForm("linkedin"),
		Portafolio:     c.PostForm("portafolio"),
		Whatsapp:       c.PostForm("whatsapp"),
		Disponibilidad: c.PostForm("disponibilidad"),
	}

	if raw, ok := c.GetPostForm("horasDisponibles"); ok {
		in.HorasDisponibles = &raw
	}

	noop := func() {}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil || fh.Size == 0 {
		return in, noop, nil
	}

	f, err := fh.Open()
	if err != nil {
		return in, noop, err
	}

	in.Avatar = &ucprog.AvatarUpload{Filename: fh.Filename, Body: f}
	return in, func() { closeFile(f) }, nil
}

func closeFile(f multipart.File) {
	_ = f.Close()
}

// POST /api/programadores (multipart)
func (h *ProgramadorHandler) Create(c *gin.Context) {
	in, done, err := profileInput(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "No se pudo leer el archivo.")
		return
	}
	defer done()

	p, err := h.svc.Create(c.Request.Context(), middleware.ActorFrom(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewProgramadorDTO(p))
}

// PUT /api/programadores/:id (multipart)
func (h *ProgramadorHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	in, done, err := profileInput(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "No se pudo leer el archivo.")
		return
	}
	defer done()

	p, err := h.svc.Update(c.Request.Context(), middleware.ActorFrom(c), id, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewProgramadorDTO(p))
}

// DELETE /api/programadores/:id
func (h *ProgramadorHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"mensaje": "Programador eliminado correctamente"})
}
