package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Asesoria struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ProgramadorID uuid.UUID    `gorm:"type:uuid;not null;index:idx_asesoria_agenda,priority:1" json:"programador_id"`
	Programador   *Programador `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"programador,omitempty"`

	// vinculo best-effort por email
	UsuarioID *uuid.UUID `gorm:"type:uuid;index" json:"usuario_id"`
	Usuario   *Usuario   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"usuario,omitempty"`

	NombreSolicitante   string `gorm:"column:nombre_solicitante;size:120" json:"nombre_solicitante"`
	EmailSolicitante    string `gorm:"column:email_solicitante;size:160" json:"email_solicitante"`
	TelefonoSolicitante string `gorm:"column:telefono_solicitante;size:40" json:"telefono_solicitante"`

	Fecha datatypes.Date `gorm:"type:date;not null;index:idx_asesoria_agenda,priority:2" json:"fecha"`
	Hora  datatypes.Time `gorm:"type:time;not null" json:"hora"`

	Comentario string `gorm:"type:text" json:"comentario"`
	Estado     string `gorm:"size:20;not null;default:'pendiente';index" json:"estado"`

	RespuestaProgramador string `gorm:"column:respuesta_programador;type:text" json:"respuesta_programador"`

	CreadoEn     time.Time  `gorm:"column:creado_en;autoCreateTime;<-:create" json:"creado_en"`
	RespondidoEn *time.Time `gorm:"column:respondido_en" json:"respondido_en"`
}

func (Asesoria) TableName() string { return "asesorias" }

func (a *Asesoria) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
