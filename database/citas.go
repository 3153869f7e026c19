package database

import (
	"context"
	"errors"

	"github.com/clinicadmn/clinica-backend/models"
	"github.com/jackc/pgx/v5"
)

// CrearCita agenda una cita para un paciente del médico indicado.
// El paciente debe pertenecer al médico de la cita; si no, se trata
// como paciente no encontrado. Una cita con los mismos datos exactos
// devuelve ErrCitaDuplicada.
func (s *Store) CrearCita(ctx context.Context, req *models.CitaRequest) (*models.Cita, error) {
	var existe bool
	err := s.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM medicos WHERE id = $1)", req.MedicoID).Scan(&existe)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, ErrMedicoNoEncontrado
	}

	err = s.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM pacientes WHERE id = $1 AND medico_id = $2)",
		req.PacienteID, req.MedicoID).Scan(&existe)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, ErrPacienteNoEncontrado
	}

	// Verificar si ya existe una cita con los mismos datos
	err = s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM citas
		 WHERE medico_id = $1 AND paciente_id = $2 AND fecha = $3 AND hora = $4 AND motivo = $5)`,
		req.MedicoID, req.PacienteID, req.Fecha, req.Hora, req.Motivo).Scan(&existe)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, ErrCitaDuplicada
	}

	cita := &models.Cita{
		PacienteID: req.PacienteID,
		MedicoID:   req.MedicoID,
		Motivo:     req.Motivo,
		Cancelada:  false,
	}
	err = s.pool.QueryRow(ctx,
		`INSERT INTO citas (paciente_id, medico_id, fecha, hora, motivo)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, to_char(fecha, 'YYYY-MM-DD'), to_char(hora, 'HH24:MI')`,
		req.PacienteID, req.MedicoID, req.Fecha, req.Hora, req.Motivo).Scan(
		&cita.ID, &cita.Fecha, &cita.Hora)
	if err != nil {
		return nil, err
	}

	return cita, nil
}

// ObtenerCitaPorID busca una cita por su id
func (s *Store) ObtenerCitaPorID(ctx context.Context, id int) (*models.Cita, error) {
	var cita models.Cita
	err := s.pool.QueryRow(ctx,
		`SELECT id, paciente_id, medico_id, to_char(fecha, 'YYYY-MM-DD'),
		        to_char(hora, 'HH24:MI'), COALESCE(motivo, ''), cancelada
		 FROM citas WHERE id = $1`, id).Scan(
		&cita.ID, &cita.PacienteID, &cita.MedicoID, &cita.Fecha,
		&cita.Hora, &cita.Motivo, &cita.Cancelada)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCitaNoEncontrada
	}
	if err != nil {
		return nil, err
	}
	return &cita, nil
}

// CancelarCita marca una cita como cancelada. La fila nunca se borra y
// cancelar una cita ya cancelada es idempotente.
func (s *Store) CancelarCita(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "UPDATE citas SET cancelada = TRUE WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCitaNoEncontrada
	}
	return nil
}

// ObtenerCitasPorPaciente lista las citas de un paciente ordenadas por fecha y hora.
// Las canceladas se incluyen salvo que incluirCanceladas sea false.
func (s *Store) ObtenerCitasPorPaciente(ctx context.Context, pacienteID int, incluirCanceladas bool) ([]models.Cita, error) {
	var existe bool
	err := s.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM pacientes WHERE id = $1)", pacienteID).Scan(&existe)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, ErrPacienteNoEncontrado
	}

	return s.listarCitas(ctx, "paciente_id", pacienteID, incluirCanceladas)
}

// ObtenerCitasPorMedico lista las citas de un médico ordenadas por fecha y hora
func (s *Store) ObtenerCitasPorMedico(ctx context.Context, medicoID int, incluirCanceladas bool) ([]models.Cita, error) {
	var existe bool
	err := s.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM medicos WHERE id = $1)", medicoID).Scan(&existe)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, ErrMedicoNoEncontrado
	}

	return s.listarCitas(ctx, "medico_id", medicoID, incluirCanceladas)
}

func (s *Store) listarCitas(ctx context.Context, columna string, id int, incluirCanceladas bool) ([]models.Cita, error) {
	query := `SELECT id, paciente_id, medico_id, to_char(fecha, 'YYYY-MM-DD'),
	                 to_char(hora, 'HH24:MI'), COALESCE(motivo, ''), cancelada
	          FROM citas WHERE ` + columna + ` = $1`
	if !incluirCanceladas {
		query += " AND NOT cancelada"
	}
	query += " ORDER BY fecha, hora"

	rows, err := s.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var citas []models.Cita
	for rows.Next() {
		var cita models.Cita
		if err := rows.Scan(&cita.ID, &cita.PacienteID, &cita.MedicoID,
			&cita.Fecha, &cita.Hora, &cita.Motivo, &cita.Cancelada); err != nil {
			return nil, err
		}
		citas = append(citas, cita)
	}
	return citas, rows.Err()
}
