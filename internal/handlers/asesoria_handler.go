package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/mentor-scheduler/internal/domain/asesoria"
	"github.com/BruksfildServices01/mentor-scheduler/internal/dto"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/mentor-scheduler/internal/middleware"
	ucasesoria "github.com/BruksfildServices01/mentor-scheduler/internal/usecase/asesoria"
)

// ======================================================
// HANDLER
// ======================================================

type AsesoriaHandler struct {
	create   *ucasesoria.CreateAsesoria
	respond  *ucasesoria.RespondAsesoria
	listProg *ucasesoria.ListForProgramador
	listMine *ucasesoria.ListMine
	schedule *ucasesoria.Schedule
	stats    *ucasesoria.GetStats
}

func NewAsesoriaHandler(
	create *ucasesoria.CreateAsesoria,
	respond *ucasesoria.RespondAsesoria,
	listProg *ucasesoria.ListForProgramador,
	listMine *ucasesoria.ListMine,
	schedule *ucasesoria.Schedule,
	stats *ucasesoria.GetStats,
) *AsesoriaHandler {
	return &AsesoriaHandler{
		create:   create,
		respond:  respond,
		listProg: listProg,
		listMine: listMine,
		schedule: schedule,
		stats:    stats,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type createAsesoriaRequest struct {
	ProgramadorID       string `json:"idProgramador" binding:"required,uuid"`
	NombreSolicitante   string `json:"nombreSolicitante" binding:"max=120"`
	EmailSolicitante    string `json:"emailSolicitante" binding:"omitempty,email"`
	TelefonoSolicitante string `json:"telefonoSolicitante" binding:"max=40"`
	Fecha               string `json:"fecha" binding:"required"`
	Hora                string `json:"hora" binding:"required,hhmm"`
	Comentario          string `json:"comentario"`
}

func (r createAsesoriaRequest) input() ucasesoria.CreateInput {
	return ucasesoria.CreateInput{
		ProgramadorID:       uuid.MustParse(r.ProgramadorID),
		NombreSolicitante:   r.NombreSolicitante,
		EmailSolicitante:    r.EmailSolicitante,
		TelefonoSolicitante: r.TelefonoSolicitante,
		Fecha:               r.Fecha,
		Hora:                r.Hora,
		Comentario:          r.Comentario,
	}
}

type respondRequest struct {
	Estado               string `json:"estado" binding:"required"`
	RespuestaProgramador string `json:"respuestaProgramador"`
}

// ======================================================
// PÚBLICO
// ======================================================

// POST /api/asesorias/publica
func (h *AsesoriaHandler) CreatePublic(c *gin.Context) {
	var req createAsesoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	a, err := h.create.Execute(c.Request.Context(), req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewAsesoriaDTO(a))
}

// GET /api/asesorias/ocupadas/:programadorId/:fecha
func (h *AsesoriaHandler) Occupied(c *gin.Context) {
	programadorID, ok := uuidParam(c, "programadorId")
	if !ok {
		return
	}

	list, err := h.schedule.Occupied(c.Request.Context(), programadorID, c.Param("fecha"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	// rota pública: só o horário, nada do solicitante
	httpresp.OK(c, dto.NewSlotOcupadoList(list))
}

// ======================================================
// AUTENTICADO
// ======================================================

// POST /api/asesorias
func (h *AsesoriaHandler) Create(c *gin.Context) {
	var req createAsesoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actor := middleware.ActorFrom(c)
	in := req.input()
	in.Actor = &actor

	a, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewAsesoriaDTO(a))
}

// GET /api/asesorias/mis
func (h *AsesoriaHandler) ListMine(c *gin.Context) {
	list, err := h.listMine.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewAsesoriaList(list))
}

// GET /api/asesorias/programador e /api/programador/asesorias
func (h *AsesoriaHandler) ListForProgramador(c *gin.Context) {
	list, err := h.listProg.Execute(c.Request.Context(), middleware.ActorFrom(c), domain.Filter{})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewAsesoriaList(list))
}

// GET /api/asesorias/programador/filtradas?estado=&desde=&hasta=
func (h *AsesoriaHandler) ListFiltered(c *gin.Context) {
	f, err := domain.ParseFilter(c.Query("estado"), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	list, err := h.listProg.Execute(c.Request.Context(), middleware.ActorFrom(c), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewAsesoriaList(list))
}

// GET /api/asesorias/programador/estadisticas
func (h *AsesoriaHandler) Stats(c *gin.Context) {
	st, err := h.stats.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, st)
}

// PUT /api/asesorias/:id e /api/programador/asesorias/:id
func (h *AsesoriaHandler) Respond(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.respond.Execute(
		c.Request.Context(),
		middleware.ActorFrom(c),
		id,
		ucasesoria.RespondInput{
			Estado:    req.Estado,
			Respuesta: req.RespuestaProgramador,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Warned(c, dto.NewAsesoriaDTO(res.Asesoria), res.Warning)
}
