package handlers

import (
	"context"

	"github.com/clinicadmn/clinica-backend/models"
)

// Store es el contrato de acceso a datos que consumen los handlers.
// database.Store lo implementa sobre PostgreSQL; las pruebas usan mocks.
type Store interface {
	CrearMedico(ctx context.Context, nombre, email, passwordHash, especialidad string) (*models.Medico, error)
	ObtenerMedicoPorEmail(ctx context.Context, email string) (*models.Medico, error)
	ObtenerMedicoPorID(ctx context.Context, id int) (*models.Medico, error)
	ObtenerMedicos(ctx context.Context) ([]models.Medico, error)
	ActualizarMedico(ctx context.Context, id int, nombre, especialidad string) error
	EliminarMedico(ctx context.Context, id int) error

	CrearPaciente(ctx context.Context, paciente *models.Paciente) error
	ObtenerPacientePorID(ctx context.Context, id int) (*models.Paciente, error)
	ObtenerPacientesPorMedico(ctx context.Context, medicoID int) ([]models.Paciente, error)
	EliminarPaciente(ctx context.Context, id int) error

	CrearCita(ctx context.Context, req *models.CitaRequest) (*models.Cita, error)
	ObtenerCitaPorID(ctx context.Context, id int) (*models.Cita, error)
	CancelarCita(ctx context.Context, id int) error
	ObtenerCitasPorPaciente(ctx context.Context, pacienteID int, incluirCanceladas bool) ([]models.Cita, error)
	ObtenerCitasPorMedico(ctx context.Context, medicoID int, incluirCanceladas bool) ([]models.Cita, error)
}

// Handler agrupa los handlers HTTP del servicio sobre un Store
type Handler struct {
	store Store
}

// New crea un Handler con el Store dado
func New(store Store) *Handler {
	return &Handler{store: store}
}
