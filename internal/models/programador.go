package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Programador struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UsuarioID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"usuario_id"`
	Usuario   *Usuario  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"usuario,omitempty"`

	Especialidad string `gorm:"size:120" json:"especialidad"`
	Descripcion  string `gorm:"type:text" json:"descripcion"`

	EmailContacto string `gorm:"column:email_contacto;size:160" json:"email_contacto"`
	Whatsapp      string `gorm:"size:40" json:"whatsapp"`
	Github        string `gorm:"size:255" json:"github"`
	Linkedin      string `gorm:"size:255" json:"linkedin"`
	Portafolio    string `gorm:"size:255" json:"portafolio"`

	DisponibilidadTexto string `gorm:"column:disponibilidad_texto;type:text" json:"disponibilidad"`

	// "HH:MM", in the order the programmer configured them
	HorasDisponibles datatypes.JSONSlice[string] `gorm:"column:horas_disponibles;type:jsonb" json:"horas_disponibles"`

	CreadoEn time.Time `gorm:"column:creado_en;autoCreateTime;<-:create" json:"creado_en"`
}

func (Programador) TableName() string { return "programadores" }

func (p *Programador) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
