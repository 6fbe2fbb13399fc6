package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RolCliente     = "cliente"
	RolProgramador = "programador"
	RolAdmin       = "admin"
)

type Usuario struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Nombre       string `gorm:"size:120;not null" json:"nombre"`
	Email        string `gorm:"size:160;uniqueIndex;not null" json:"email"`
	FotoURL      string `gorm:"column:foto_url;size:500" json:"foto_url"`
	Rol          string `gorm:"size:20;not null;default:'cliente'" json:"rol"`
	PasswordHash string `gorm:"column:password_hash;size:255" json:"-"`
	Activo       bool   `gorm:"not null;default:true" json:"activo"`

	CreadoEn time.Time `gorm:"column:creado_en;autoCreateTime;<-:create" json:"creado_en"`
}

func (Usuario) TableName() string { return "usuarios" }

func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
