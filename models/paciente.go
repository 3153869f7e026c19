package models

import (
	"time"
)

// Paciente representa la tabla pacientes en la base de datos
type Paciente struct {
	ID            int       `json:"id" db:"id"`
	MedicoID      int       `json:"medico_id" db:"medico_id"`
	Nombre        string    `json:"nombre" db:"nombre"`
	Edad          *int      `json:"edad,omitempty" db:"edad"`
	Email         string    `json:"email,omitempty" db:"email"`
	Telefono      string    `json:"telefono,omitempty" db:"telefono"`
	Historial     string    `json:"historial,omitempty" db:"historial"`
	FechaRegistro time.Time `json:"fecha_registro" db:"fecha_registro"`
}

// HistorialPaciente agrupa el expediente del paciente con sus citas
type HistorialPaciente struct {
	Paciente        Paciente `json:"paciente"`
	Citas           []Cita   `json:"citas"`
	CitasActivas    int      `json:"citas_activas"`
	CitasCanceladas int      `json:"citas_canceladas"`
}
