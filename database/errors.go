package database

import "errors"

// Errores que el almacén devuelve a los handlers; ahí se traducen a códigos HTTP.
var (
	ErrMedicoNoEncontrado   = errors.New("médico no encontrado")
	ErrPacienteNoEncontrado = errors.New("paciente no encontrado")
	ErrCitaNoEncontrada     = errors.New("cita no encontrada")
	ErrEmailRegistrado      = errors.New("el email ya está registrado")
	ErrCitaDuplicada        = errors.New("ya existe una cita con esos datos")
)
