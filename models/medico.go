package models

import (
	"time"
)

// Medico representa la tabla medicos en la base de datos
type Medico struct {
	ID            int       `json:"id" db:"id"`
	Nombre        string    `json:"nombre" db:"nombre"`
	Email         string    `json:"email" db:"email"`
	Password      string    `json:"password,omitempty" db:"-"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	Especialidad  string    `json:"especialidad" db:"especialidad"`
	FechaRegistro time.Time `json:"fecha_registro" db:"fecha_registro"`
}

// MedicoResponse representa la respuesta sin datos sensibles
type MedicoResponse struct {
	ID            int       `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Especialidad  string    `json:"especialidad"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

// Response convierte el registro completo a su forma pública
func (m *Medico) Response() MedicoResponse {
	return MedicoResponse{
		ID:            m.ID,
		Nombre:        m.Nombre,
		Email:         m.Email,
		Especialidad:  m.Especialidad,
		FechaRegistro: m.FechaRegistro,
	}
}

// ActualizarMedicoRequest representa una edición explícita de un médico
type ActualizarMedicoRequest struct {
	Nombre       string `json:"nombre"`
	Especialidad string `json:"especialidad"`
}

// LoginRequest representa la solicitud de login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse representa la respuesta del login con el token
type LoginResponse struct {
	Token  string         `json:"token"`
	Medico MedicoResponse `json:"medico"`
}
