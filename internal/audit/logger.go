package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

// Logger grava eventos na tabela audit_logs.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		ProgramadorID: ev.ProgramadorID,
		UsuarioID:     ev.UsuarioID,
		Action:        ev.Action,
		Entity:        ev.Entity,
		EntityID:      ev.EntityID,
		Metadata:      metaJSON,
	}

	return l.db.Create(&row).Error
}

type Query struct {
	ProgramadorID uuid.UUID
	Action        string
	Entity        string
	From          *time.Time
	To            *time.Time
	Page          int
	Limit         int
}

func (q *Query) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
}

// List pagina os eventos de um perfil, mais recentes primeiro.
func (l *Logger) List(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	q.Normalize()

	tx := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("programador_id = ?", q.ProgramadorID)

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}
	if q.From != nil {
		tx = tx.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		tx = tx.Where("created_at < ?", q.To.Add(24*time.Hour))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := tx.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
