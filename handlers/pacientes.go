package handlers

import (
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/clinicadmn/clinica-backend/models"
	"github.com/gofiber/fiber/v2"
)

// RegistrarPaciente registra un paciente para un médico existente
func (h *Handler) RegistrarPaciente(c *fiber.Ctx) error {
	var paciente models.Paciente
	if err := c.BodyParser(&paciente); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if paciente.Nombre == "" || paciente.MedicoID <= 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": "Nombre y medico_id son requeridos",
		})
	}

	if paciente.Edad != nil && *paciente.Edad < 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": "Edad inválida",
		})
	}

	if paciente.Email != "" && !govalidator.IsEmail(paciente.Email) {
		return c.Status(400).JSON(fiber.Map{
			"error": "El email no tiene un formato válido",
		})
	}

	if err := h.store.CrearPaciente(c.Context(), &paciente); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"mensaje":  "Paciente registrado exitosamente",
		"paciente": paciente,
	})
}

// ObtenerPacientePorID obtiene un paciente específico, incluido su historial
func (h *Handler) ObtenerPacientePorID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	paciente, err := h.store.ObtenerPacientePorID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(paciente)
}

// ObtenerPacientesPorMedico lista los pacientes de un médico
func (h *Handler) ObtenerPacientesPorMedico(c *fiber.Ctx) error {
	medicoID, err := strconv.Atoi(c.Params("medico_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	pacientes, err := h.store.ObtenerPacientesPorMedico(c.Context(), medicoID)
	if err != nil {
		return errorJSON(c, err)
	}
	if pacientes == nil {
		pacientes = []models.Paciente{}
	}

	return c.JSON(fiber.Map{
		"pacientes": pacientes,
		"total":     len(pacientes),
	})
}

// EliminarPaciente elimina un paciente y, en cascada, todas sus citas
func (h *Handler) EliminarPaciente(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	if err := h.store.EliminarPaciente(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"mensaje": "Paciente eliminado exitosamente junto con todas sus citas",
	})
}

// ObtenerHistorialPaciente devuelve el expediente del paciente con todas
// sus citas y el conteo de activas y canceladas
func (h *Handler) ObtenerHistorialPaciente(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	paciente, err := h.store.ObtenerPacientePorID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}

	citas, err := h.store.ObtenerCitasPorPaciente(c.Context(), id, true)
	if err != nil {
		return errorJSON(c, err)
	}
	if citas == nil {
		citas = []models.Cita{}
	}

	historial := models.HistorialPaciente{
		Paciente: *paciente,
		Citas:    citas,
	}
	for _, cita := range citas {
		if cita.Cancelada {
			historial.CitasCanceladas++
		} else {
			historial.CitasActivas++
		}
	}

	return c.JSON(historial)
}
