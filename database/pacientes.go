package database

import (
	"context"
	"errors"

	"github.com/clinicadmn/clinica-backend/models"
	"github.com/jackc/pgx/v5"
)

// CrearPaciente registra un paciente para un médico existente.
// Devuelve ErrMedicoNoEncontrado si el médico no existe.
func (s *Store) CrearPaciente(ctx context.Context, paciente *models.Paciente) error {
	var existe bool
	err := s.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM medicos WHERE id = $1)", paciente.MedicoID).Scan(&existe)
	if err != nil {
		return err
	}
	if !existe {
		return ErrMedicoNoEncontrado
	}

	return s.pool.QueryRow(ctx,
		`INSERT INTO pacientes (medico_id, nombre, edad, email, telefono, historial)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, fecha_registro`,
		paciente.MedicoID, paciente.Nombre, paciente.Edad, paciente.Email,
		paciente.Telefono, paciente.Historial).Scan(&paciente.ID, &paciente.FechaRegistro)
}

// ObtenerPacientePorID busca un paciente por su id, incluyendo el historial
func (s *Store) ObtenerPacientePorID(ctx context.Context, id int) (*models.Paciente, error) {
	var paciente models.Paciente
	err := s.pool.QueryRow(ctx,
		`SELECT id, medico_id, nombre, edad, COALESCE(email, ''), COALESCE(telefono, ''),
		        COALESCE(historial, ''), fecha_registro
		 FROM pacientes WHERE id = $1`, id).Scan(
		&paciente.ID, &paciente.MedicoID, &paciente.Nombre, &paciente.Edad,
		&paciente.Email, &paciente.Telefono, &paciente.Historial, &paciente.FechaRegistro)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPacienteNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &paciente, nil
}

// ObtenerPacientesPorMedico lista los pacientes de un médico ordenados por id.
// Devuelve ErrMedicoNoEncontrado si el médico no existe.
func (s *Store) ObtenerPacientesPorMedico(ctx context.Context, medicoID int) ([]models.Paciente, error) {
	var existe bool
	err := s.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM medicos WHERE id = $1)", medicoID).Scan(&existe)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, ErrMedicoNoEncontrado
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, medico_id, nombre, edad, COALESCE(email, ''), COALESCE(telefono, ''),
		        COALESCE(historial, ''), fecha_registro
		 FROM pacientes WHERE medico_id = $1 ORDER BY id`, medicoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pacientes []models.Paciente
	for rows.Next() {
		var paciente models.Paciente
		if err := rows.Scan(&paciente.ID, &paciente.MedicoID, &paciente.Nombre,
			&paciente.Edad, &paciente.Email, &paciente.Telefono,
			&paciente.Historial, &paciente.FechaRegistro); err != nil {
			return nil, err
		}
		pacientes = append(pacientes, paciente)
	}
	return pacientes, rows.Err()
}

// EliminarPaciente borra un paciente; sus citas se eliminan en cascada.
// Un segundo borrado del mismo id devuelve ErrPacienteNoEncontrado.
func (s *Store) EliminarPaciente(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM pacientes WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPacienteNoEncontrado
	}
	return nil
}
