package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Proyecto struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProgramadorID uuid.UUID `gorm:"type:uuid;not null;index" json:"programador_id"`

	Titulo      string `gorm:"size:160;not null" json:"titulo"`
	Descripcion string `gorm:"type:text" json:"descripcion"`
	Tecnologias string `gorm:"size:255" json:"tecnologias"`
	URLDemo     string `gorm:"column:url_demo;size:255" json:"url_demo"`
	URLRepo     string `gorm:"column:url_repo;size:255" json:"url_repo"`
	Estado      string `gorm:"size:30" json:"estado"`

	CreadoEn time.Time `gorm:"column:creado_en;autoCreateTime;<-:create" json:"creado_en"`
}

func (Proyecto) TableName() string { return "proyectos" }

func (p *Proyecto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
