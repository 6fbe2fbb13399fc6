package handlers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/mentor-scheduler/internal/audit"
	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/mentor-scheduler/internal/middleware"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

type auditLister interface {
	List(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs auditLister
	dir  directory.Repository
}

func NewAuditLogsHandler(logs auditLister, dir directory.Repository) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, dir: dir}
}

// GET /api/me/audit-logs
func (h *AuditLogsHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	p, err := h.dir.GetProgramadorByUsuarioID(c.Request.Context(), actor.UsuarioID)
	if errors.Is(err, directory.ErrNotFound) {
		httperr.Forbidden(c, "not_programmer", "No tienes un perfil de programador.")
		return
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	q := audit.Query{
		ProgramadorID: p.ID,
		Action:        c.Query("action"),
		Entity:        c.Query("entity"),
		Page:          page,
		Limit:         limit,
	}

	// --------------------------------------------------
	// Filtros opcionais de data (inválidas são ignoradas)
	// --------------------------------------------------

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		q.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		q.To = &to
	}

	q.Normalize()

	logs, total, err := h.logs.List(c.Request.Context(), q)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Error al listar los registros.")
		return
	}

	httpresp.OK(c, gin.H{
		"page":  q.Page,
		"limit": q.Limit,
		"total": total,
		"logs":  logs,
	})
}
