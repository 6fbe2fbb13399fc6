package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

const sinNombre = "Sin Nombre"

type ProgramadorPublicoDTO struct {
	ID               uuid.UUID  `json:"id"`
	Nombre           string     `json:"nombre"`
	Foto             string     `json:"foto"`
	Especialidad     string     `json:"especialidad"`
	Descripcion      string     `json:"descripcion"`
	EmailContacto    string     `json:"emailContacto"`
	Whatsapp         string     `json:"whatsapp"`
	Github           string     `json:"github"`
	Linkedin         string     `json:"linkedin"`
	Portafolio       string     `json:"portafolio"`
	Disponibilidad   string     `json:"disponibilidad"`
	HorasDisponibles []string   `json:"horasDisponibles"`
	UsuarioID        *uuid.UUID `json:"usuarioId"`
}

func NewProgramadorDTO(p *models.Programador) ProgramadorPublicoDTO {
	out := ProgramadorPublicoDTO{
		ID:               p.ID,
		Nombre:           sinNombre,
		Especialidad:     p.Especialidad,
		Descripcion:      p.Descripcion,
		EmailContacto:    p.EmailContacto,
		Whatsapp:         p.Whatsapp,
		Github:           p.Github,
		Linkedin:         p.Linkedin,
		Portafolio:       p.Portafolio,
		Disponibilidad:   p.DisponibilidadTexto,
		HorasDisponibles: []string{},
	}

	if len(p.HorasDisponibles) > 0 {
		out.HorasDisponibles = append(out.HorasDisponibles, p.HorasDisponibles...)
	}

	if u := p.Usuario; u != nil {
		if u.Nombre != "" {
			out.Nombre = u.Nombre
		}
		out.Foto = u.FotoURL
		id := u.ID
		out.UsuarioID = &id
	}

	return out
}

func NewProgramadorList(list []models.Programador) []ProgramadorPublicoDTO {
	out := make([]ProgramadorPublicoDTO, 0, len(list))
	for i := range list {
		out = append(out, NewProgramadorDTO(&list[i]))
	}
	return out
}

type UsuarioDTO struct {
	ID            uuid.UUID  `json:"id"`
	Nombre        string     `json:"nombre"`
	Email         string     `json:"email"`
	Rol           string     `json:"rol"`
	Foto          string     `json:"foto"`
	ProgramadorID *uuid.UUID `json:"programadorId,omitempty"`
}

func NewUsuarioDTO(u *models.Usuario, programadorID *uuid.UUID) UsuarioDTO {
	return UsuarioDTO{
		ID:            u.ID,
		Nombre:        u.Nombre,
		Email:         u.Email,
		Rol:           u.Rol,
		Foto:          u.FotoURL,
		ProgramadorID: programadorID,
	}
}
