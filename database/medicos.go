package database

import (
	"context"
	"errors"

	"github.com/clinicadmn/clinica-backend/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// CrearMedico inserta un médico nuevo y retorna el registro creado.
// Devuelve ErrEmailRegistrado si el email ya existe.
func (s *Store) CrearMedico(ctx context.Context, nombre, email, passwordHash, especialidad string) (*models.Medico, error) {
	// Verificar si el email ya existe
	var existe bool
	err := s.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM medicos WHERE email = $1)", email).Scan(&existe)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, ErrEmailRegistrado
	}

	medico := &models.Medico{
		Nombre:       nombre,
		Email:        email,
		PasswordHash: passwordHash,
		Especialidad: especialidad,
	}
	err = s.pool.QueryRow(ctx,
		`INSERT INTO medicos (nombre, email, password_hash, especialidad)
		 VALUES ($1, $2, $3, $4) RETURNING id, fecha_registro`,
		nombre, email, passwordHash, especialidad).Scan(&medico.ID, &medico.FechaRegistro)
	if err != nil {
		// La restricción UNIQUE cubre la carrera entre la verificación y el INSERT
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailRegistrado
		}
		return nil, err
	}

	return medico, nil
}

// ObtenerMedicoPorEmail busca un médico por email, incluyendo el hash
// de la contraseña para verificación de credenciales.
func (s *Store) ObtenerMedicoPorEmail(ctx context.Context, email string) (*models.Medico, error) {
	var medico models.Medico
	err := s.pool.QueryRow(ctx,
		`SELECT id, nombre, email, password_hash, COALESCE(especialidad, ''), fecha_registro
		 FROM medicos WHERE email = $1`, email).Scan(
		&medico.ID, &medico.Nombre, &medico.Email, &medico.PasswordHash,
		&medico.Especialidad, &medico.FechaRegistro)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMedicoNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &medico, nil
}

// ObtenerMedicoPorID busca un médico por su id
func (s *Store) ObtenerMedicoPorID(ctx context.Context, id int) (*models.Medico, error) {
	var medico models.Medico
	err := s.pool.QueryRow(ctx,
		`SELECT id, nombre, email, COALESCE(especialidad, ''), fecha_registro
		 FROM medicos WHERE id = $1`, id).Scan(
		&medico.ID, &medico.Nombre, &medico.Email, &medico.Especialidad, &medico.FechaRegistro)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMedicoNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &medico, nil
}

// ObtenerMedicos lista todos los médicos registrados
func (s *Store) ObtenerMedicos(ctx context.Context) ([]models.Medico, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, nombre, email, COALESCE(especialidad, ''), fecha_registro
		 FROM medicos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var medicos []models.Medico
	for rows.Next() {
		var medico models.Medico
		if err := rows.Scan(&medico.ID, &medico.Nombre, &medico.Email,
			&medico.Especialidad, &medico.FechaRegistro); err != nil {
			return nil, err
		}
		medicos = append(medicos, medico)
	}
	return medicos, rows.Err()
}

// ActualizarMedico edita el nombre y la especialidad de un médico
func (s *Store) ActualizarMedico(ctx context.Context, id int, nombre, especialidad string) error {
	tag, err := s.pool.Exec(ctx,
		"UPDATE medicos SET nombre = $1, especialidad = $2 WHERE id = $3",
		nombre, especialidad, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMedicoNoEncontrado
	}
	return nil
}

// EliminarMedico borra un médico; sus pacientes y citas se eliminan en
// cascada por las claves foráneas.
func (s *Store) EliminarMedico(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM medicos WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMedicoNoEncontrado
	}
	return nil
}
