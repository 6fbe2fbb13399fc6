package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

type DirectoryGormRepository struct {
	db *gorm.DB
}

func NewDirectoryGormRepository(db *gorm.DB) *DirectoryGormRepository {
	return &DirectoryGormRepository{db: db}
}

var _ directory.Repository = (*DirectoryGormRepository)(nil)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return directory.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Usuario
// --------------------------------------------------

// FindUsuarioByEmail compara o email exatamente como veio.
func (r *DirectoryGormRepository) FindUsuarioByEmail(
	ctx context.Context,
	email string,
) (*models.Usuario, error) {

	var u models.Usuario
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *DirectoryGormRepository) GetUsuarioByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Usuario, error) {

	var u models.Usuario
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *DirectoryGormRepository) CreateUsuario(
	ctx context.Context,
	u *models.Usuario,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// --------------------------------------------------
// Programador
// --------------------------------------------------

func (r *DirectoryGormRepository) GetProgramadorByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Programador, error) {

	var p models.Programador
	if err := r.db.WithContext(ctx).
		Preload("Usuario").
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *DirectoryGormRepository) GetProgramadorByUsuarioID(
	ctx context.Context,
	usuarioID uuid.UUID,
) (*models.Programador, error) {

	var p models.Programador
	if err := r.db.WithContext(ctx).
		Preload("Usuario").
		Where("usuario_id = ?", usuarioID).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *DirectoryGormRepository) ListProgramadores(
	ctx context.Context,
) ([]models.Programador, error) {

	var list []models.Programador
	if err := r.db.WithContext(ctx).
		Preload("Usuario").
		Order("creado_en ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *DirectoryGormRepository) CreateProgramador(
	ctx context.Context,
	u *models.Usuario,
	p *models.Programador,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}

		p.UsuarioID = u.ID
		p.Usuario = nil
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		p.Usuario = u
		return nil
	})
}

func (r *DirectoryGormRepository) UpdateProgramador(
	ctx context.Context,
	u *models.Usuario,
	p *models.Programador,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(u).
			Select("nombre", "foto_url").
			Updates(u).Error; err != nil {
			return err
		}

		return tx.Model(p).
			Select(
				"especialidad", "descripcion", "email_contacto",
				"whatsapp", "github", "linkedin", "portafolio",
				"disponibilidad_texto", "horas_disponibles",
			).
			Updates(p).Error
	})
}

func (r *DirectoryGormRepository) DeleteProgramador(
	ctx context.Context,
	p *models.Programador,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("programador_id = ?", p.ID).
			Delete(&models.Asesoria{}).Error; err != nil {
			return err
		}
		if err := tx.Where("programador_id = ?", p.ID).
			Delete(&models.Proyecto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", p.ID).
			Delete(&models.Programador{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", p.UsuarioID).
			Delete(&models.Usuario{}).Error
	})
}

// --------------------------------------------------
// Proyecto
// --------------------------------------------------

func (r *DirectoryGormRepository) ListProyectos(
	ctx context.Context,
	programadorID uuid.UUID,
) ([]models.Proyecto, error) {

	var list []models.Proyecto
	if err := r.db.WithContext(ctx).
		Where("programador_id = ?", programadorID).
		Order("creado_en DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *DirectoryGormRepository) GetProyecto(
	ctx context.Context,
	id uuid.UUID,
) (*models.Proyecto, error) {

	var p models.Proyecto
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *DirectoryGormRepository) CreateProyecto(
	ctx context.Context,
	p *models.Proyecto,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *DirectoryGormRepository) DeleteProyecto(
	ctx context.Context,
	id uuid.UUID,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Proyecto{}).Error
}
