package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/mentor-scheduler/internal/middleware"
	ucprog "github.com/BruksfildServices01/mentor-scheduler/internal/usecase/programador"
)

type ProyectoHandler struct {
	svc *ucprog.Service
}

func NewProyectoHandler(svc *ucprog.Service) *ProyectoHandler {
	return &ProyectoHandler{svc: svc}
}

type proyectoRequest struct {
	Titulo      string `json:"titulo" binding:"required,max=160"`
	Descripcion string `json:"descripcion"`
	Tecnologias string `json:"tecnologias" binding:"max=255"`
	URLDemo     string `json:"urlDemo" binding:"omitempty,url"`
	URLRepo     string `json:"urlRepo" binding:"omitempty,url"`
	Estado      string `json:"estado" binding:"max=30"`
}

// GET /api/programadores/:id/proyectos
func (h *ProyectoHandler) ListByProgramador(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	list, err := h.svc.ListProyectos(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, list)
}

// POST /api/proyectos
func (h *ProyectoHandler) Create(c *gin.Context) {
	var req proyectoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	pr, err := h.svc.CreateProyecto(c.Request.Context(), middleware.ActorFrom(c), ucprog.ProyectoInput{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Tecnologias: req.Tecnologias,
		URLDemo:     req.URLDemo,
		URLRepo:     req.URLRepo,
		Estado:      req.Estado,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, pr)
}

// DELETE /api/proyectos/:id
func (h *ProyectoHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteProyecto(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
