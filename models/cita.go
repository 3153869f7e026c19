package models

// Cita representa la tabla citas en la base de datos.
// Fecha usa el formato YYYY-MM-DD y Hora el formato HH:MM.
type Cita struct {
	ID         int    `json:"id" db:"id"`
	PacienteID int    `json:"paciente_id" db:"paciente_id"`
	MedicoID   int    `json:"medico_id" db:"medico_id"`
	Fecha      string `json:"fecha" db:"fecha"`
	Hora       string `json:"hora" db:"hora"`
	Motivo     string `json:"motivo,omitempty" db:"motivo"`
	Cancelada  bool   `json:"cancelada" db:"cancelada"`
}

// CitaRequest representa una solicitud para agendar una cita
type CitaRequest struct {
	PacienteID int    `json:"paciente_id" validate:"required"`
	MedicoID   int    `json:"medico_id" validate:"required"`
	Fecha      string `json:"fecha" validate:"required"`
	Hora       string `json:"hora" validate:"required"`
	Motivo     string `json:"motivo" validate:"max=500"`
}
