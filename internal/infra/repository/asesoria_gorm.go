package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/mentor-scheduler/internal/domain/asesoria"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

type AsesoriaGormRepository struct {
	db *gorm.DB
}

func NewAsesoriaGormRepository(db *gorm.DB) *AsesoriaGormRepository {
	return &AsesoriaGormRepository{db: db}
}

var _ domain.Repository = (*AsesoriaGormRepository)(nil)

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *AsesoriaGormRepository) CreateAsesoria(
	ctx context.Context,
	a *models.Asesoria,
) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AsesoriaGormRepository) SlotTaken(
	ctx context.Context,
	programadorID uuid.UUID,
	fecha datatypes.Date,
	hora datatypes.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Asesoria{}).
		Where(
			"programador_id = ? AND fecha = ? AND hora = ? AND estado <> ?",
			programadorID,
			fecha,
			hora,
			string(domain.EstadoRechazada),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *AsesoriaGormRepository) GetAsesoria(
	ctx context.Context,
	id uuid.UUID,
) (*models.Asesoria, error) {

	var a models.Asesoria
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// UpdateAsesoria só grava os campos da resposta; fecha/hora nunca mudam aqui.
func (r *AsesoriaGormRepository) UpdateAsesoria(
	ctx context.Context,
	a *models.Asesoria,
) error {
	return r.db.WithContext(ctx).
		Model(a).
		Select("estado", "respuesta_programador", "respondido_en").
		Updates(a).Error
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *AsesoriaGormRepository) ListByProgramador(
	ctx context.Context,
	programadorID uuid.UUID,
	f domain.Filter,
) ([]models.Asesoria, error) {

	q := r.db.WithContext(ctx).
		Where("programador_id = ?", programadorID)

	if f.Estado != "" {
		q = q.Where("estado = ?", string(f.Estado))
	}

	if f.HasRange() {
		q = q.Where(
			"fecha BETWEEN ? AND ?",
			datatypes.Date(*f.Desde),
			datatypes.Date(*f.Hasta),
		)
	}

	var list []models.Asesoria
	if err := q.
		Order("fecha ASC").
		Order("hora ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *AsesoriaGormRepository) ListByUsuario(
	ctx context.Context,
	usuarioID uuid.UUID,
) ([]models.Asesoria, error) {

	var list []models.Asesoria
	if err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("fecha DESC").
		Order("hora DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *AsesoriaGormRepository) ListForDate(
	ctx context.Context,
	programadorID uuid.UUID,
	fecha time.Time,
	exclude ...domain.Status,
) ([]models.Asesoria, error) {

	q := r.db.WithContext(ctx).
		Where("programador_id = ? AND fecha = ?", programadorID, datatypes.Date(fecha))

	if len(exclude) > 0 {
		estados := make([]string, 0, len(exclude))
		for _, s := range exclude {
			estados = append(estados, string(s))
		}
		q = q.Where("estado NOT IN ?", estados)
	}

	var list []models.Asesoria
	if err := q.Order("hora ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// --------------------------------------------------
// Stats
// --------------------------------------------------

func (r *AsesoriaGormRepository) Stats(
	ctx context.Context,
	programadorID uuid.UUID,
) (*domain.Stats, error) {

	var byEstado []struct {
		Estado string
		Total  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Asesoria{}).
		Select("estado, COUNT(*) AS total").
		Where("programador_id = ?", programadorID).
		Group("estado").
		Scan(&byEstado).Error; err != nil {
		return nil, err
	}

	var byFecha []struct {
		Fecha time.Time
		Total int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Asesoria{}).
		Select("fecha, COUNT(*) AS total").
		Where("programador_id = ?", programadorID).
		Group("fecha").
		Order("fecha").
		Scan(&byFecha).Error; err != nil {
		return nil, err
	}

	st := &domain.Stats{PorFecha: make([]domain.DayCount, 0, len(byFecha))}
	for _, row := range byEstado {
		st.Total += row.Total
		switch domain.Status(row.Estado) {
		case domain.EstadoPendiente:
			st.Pendiente = row.Total
		case domain.EstadoAprobada:
			st.Aprobada = row.Total
		case domain.EstadoRechazada:
			st.Rechazada = row.Total
		}
	}
	for _, row := range byFecha {
		st.PorFecha = append(st.PorFecha, domain.DayCount{
			Fecha: row.Fecha.Format(domain.DateLayout),
			Total: row.Total,
		})
	}

	return st, nil
}
