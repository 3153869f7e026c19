package handlers

import (
	"strconv"
	"time"

	"github.com/clinicadmn/clinica-backend/models"
	"github.com/gofiber/fiber/v2"
)

// fechaValida verifica que la fecha sea un valor de calendario real en formato YYYY-MM-DD
func fechaValida(fecha string) bool {
	_, err := time.Parse("2006-01-02", fecha)
	return err == nil
}

// normalizarHora acepta HH:MM y HH:MM:SS y devuelve siempre HH:MM,
// que es la precisión con la que se guardan y se responden las citas
func normalizarHora(hora string) (string, bool) {
	if t, err := time.Parse("15:04", hora); err == nil {
		return t.Format("15:04"), true
	}
	if t, err := time.Parse("15:04:05", hora); err == nil {
		return t.Format("15:04"), true
	}
	return "", false
}

// AgendarCita crea una cita para un paciente del médico indicado
func (h *Handler) AgendarCita(c *fiber.Ctx) error {
	var req models.CitaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if req.PacienteID <= 0 || req.MedicoID <= 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": "paciente_id y medico_id son requeridos",
		})
	}

	if req.Fecha == "" || req.Hora == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Fecha y hora son requeridas",
		})
	}

	if !fechaValida(req.Fecha) {
		return c.Status(400).JSON(fiber.Map{
			"error": "La fecha debe tener el formato YYYY-MM-DD",
		})
	}

	hora, ok := normalizarHora(req.Hora)
	if !ok {
		return c.Status(400).JSON(fiber.Map{
			"error": "La hora debe tener el formato HH:MM",
		})
	}
	req.Hora = hora

	cita, err := h.store.CrearCita(c.Context(), &req)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"mensaje": "Cita agendada exitosamente",
		"cita":    cita,
	})
}

// ObtenerCitaPorID obtiene una cita específica
func (h *Handler) ObtenerCitaPorID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	cita, err := h.store.ObtenerCitaPorID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(cita)
}

// CancelarCita marca una cita como cancelada sin eliminar la fila.
// Cancelar una cita ya cancelada responde 200 igualmente.
func (h *Handler) CancelarCita(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	if err := h.store.CancelarCita(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"mensaje": "Cita cancelada exitosamente",
	})
}

// incluirCanceladas lee el filtro de citas canceladas; por defecto se
// incluyen y cualquier valor no booleano se trata como el defecto
func incluirCanceladas(c *fiber.Ctx) bool {
	v, err := strconv.ParseBool(c.Query("incluir_canceladas", "true"))
	if err != nil {
		return true
	}
	return v
}

// ObtenerCitasPorPaciente lista las citas de un paciente
func (h *Handler) ObtenerCitasPorPaciente(c *fiber.Ctx) error {
	pacienteID, err := strconv.Atoi(c.Params("paciente_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	citas, err := h.store.ObtenerCitasPorPaciente(c.Context(), pacienteID, incluirCanceladas(c))
	if err != nil {
		return errorJSON(c, err)
	}
	if citas == nil {
		citas = []models.Cita{}
	}

	return c.JSON(fiber.Map{
		"citas": citas,
		"total": len(citas),
	})
}

// ObtenerCitasPorMedico lista las citas de un médico
func (h *Handler) ObtenerCitasPorMedico(c *fiber.Ctx) error {
	medicoID, err := strconv.Atoi(c.Params("medico_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	citas, err := h.store.ObtenerCitasPorMedico(c.Context(), medicoID, incluirCanceladas(c))
	if err != nil {
		return errorJSON(c, err)
	}
	if citas == nil {
		citas = []models.Cita{}
	}

	return c.JSON(fiber.Map{
		"citas": citas,
		"total": len(citas),
	})
}
