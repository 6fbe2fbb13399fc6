package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/mentor-scheduler/internal/dto"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/mentor-scheduler/internal/middleware"
)

type MeHandler struct {
	dir directory.Repository
}

func NewMeHandler(dir directory.Repository) *MeHandler {
	return &MeHandler{dir: dir}
}

// GET /api/me
func (h *MeHandler) GetMe(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	u, err := h.dir.GetUsuarioByID(c.Request.Context(), actor.UsuarioID)
	if errors.Is(err, directory.ErrNotFound) {
		httperr.Unauthorized(c, "user_not_found", "Usuario no encontrado.")
		return
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var programadorID *uuid.UUID
	p, err := h.dir.GetProgramadorByUsuarioID(c.Request.Context(), u.ID)
	switch {
	case err == nil:
		programadorID = &p.ID
	case !errors.Is(err, directory.ErrNotFound):
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewUsuarioDTO(u, programadorID))
}
