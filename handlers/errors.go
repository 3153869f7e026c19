package handlers

import (
	"errors"

	"github.com/clinicadmn/clinica-backend/database"
	"github.com/gofiber/fiber/v2"
)

// errorJSON traduce los errores del almacén a códigos HTTP.
// Cualquier error no reconocido se responde como 500 genérico sin
// exponer detalles internos.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, database.ErrMedicoNoEncontrado),
		errors.Is(err, database.ErrPacienteNoEncontrado),
		errors.Is(err, database.ErrCitaNoEncontrada):
		return c.Status(404).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, database.ErrEmailRegistrado),
		errors.Is(err, database.ErrCitaDuplicada):
		return c.Status(409).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(500).JSON(fiber.Map{
			"error": "Error interno del servidor",
		})
	}
}
