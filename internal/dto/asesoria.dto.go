package dto

import (
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/mentor-scheduler/internal/domain/asesoria"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

type AsesoriaDTO struct {
	ID                   uuid.UUID  `json:"id"`
	ProgramadorID        uuid.UUID  `json:"programadorId"`
	UsuarioID            *uuid.UUID `json:"usuarioId"`
	NombreSolicitante    string     `json:"nombreSolicitante"`
	EmailSolicitante     string     `json:"emailSolicitante"`
	TelefonoSolicitante  string     `json:"telefonoSolicitante"`
	Fecha                string     `json:"fecha"`
	Hora                 string     `json:"hora"`
	Comentario           string     `json:"comentario"`
	Estado               string     `json:"estado"`
	RespuestaProgramador string     `json:"respuestaProgramador"`
	CreadoEn             time.Time  `json:"creadoEn"`
	RespondidoEn         *time.Time `json:"respondidoEn"`
}

func NewAsesoriaDTO(a *models.Asesoria) AsesoriaDTO {
	return AsesoriaDTO{
		ID:                   a.ID,
		ProgramadorID:        a.ProgramadorID,
		UsuarioID:            a.UsuarioID,
		NombreSolicitante:    a.NombreSolicitante,
		EmailSolicitante:     a.EmailSolicitante,
		TelefonoSolicitante:  a.TelefonoSolicitante,
		Fecha:                domain.FechaString(a.Fecha),
		Hora:                 domain.HoraString(a.Hora),
		Comentario:           a.Comentario,
		Estado:               a.Estado,
		RespuestaProgramador: a.RespuestaProgramador,
		CreadoEn:             a.CreadoEn,
		RespondidoEn:         a.RespondidoEn,
	}
}

func NewAsesoriaList(list []models.Asesoria) []AsesoriaDTO {
	out := make([]AsesoriaDTO, 0, len(list))
	for i := range list {
		out = append(out, NewAsesoriaDTO(&list[i]))
	}
	return out
}

// SlotOcupadoDTO é a visão pública da agenda: sem dados do solicitante.
type SlotOcupadoDTO struct {
	ID     uuid.UUID `json:"id"`
	Fecha  string    `json:"fecha"`
	Hora   string    `json:"hora"`
	Estado string    `json:"estado"`
}

func NewSlotOcupadoList(list []models.Asesoria) []SlotOcupadoDTO {
	out := make([]SlotOcupadoDTO, 0, len(list))
	for _, a := range list {
		out = append(out, SlotOcupadoDTO{
			ID:     a.ID,
			Fecha:  domain.FechaString(a.Fecha),
			Hora:   domain.HoraString(a.Hora),
			Estado: a.Estado,
		})
	}
	return out
}
