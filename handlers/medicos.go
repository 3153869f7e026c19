package handlers

import (
	"errors"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/clinicadmn/clinica-backend/database"
	"github.com/clinicadmn/clinica-backend/middleware"
	"github.com/clinicadmn/clinica-backend/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// RegistrarMedico crea un nuevo médico en el sistema
func (h *Handler) RegistrarMedico(c *fiber.Ctx) error {
	var medico models.Medico
	if err := c.BodyParser(&medico); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	// Validar campos requeridos
	if medico.Nombre == "" || medico.Email == "" || medico.Password == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Nombre, email y contraseña son requeridos",
		})
	}

	if !govalidator.IsEmail(medico.Email) {
		return c.Status(400).JSON(fiber.Map{
			"error": "El email no tiene un formato válido",
		})
	}

	// Encriptar la contraseña
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(medico.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al procesar la contraseña",
		})
	}

	creado, err := h.store.CrearMedico(c.Context(), medico.Nombre, medico.Email,
		string(hashedPassword), medico.Especialidad)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"mensaje": "Médico registrado exitosamente",
		"medico":  creado.Response(),
	})
}

// Login autentica un médico y devuelve un token JWT
func (h *Handler) Login(c *fiber.Ctx) error {
	var loginReq models.LoginRequest
	if err := c.BodyParser(&loginReq); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if loginReq.Email == "" || loginReq.Password == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Email y contraseña son requeridos",
		})
	}

	// El mismo mensaje para email desconocido y contraseña incorrecta;
	// las fallas del almacén no se disfrazan de credenciales inválidas
	medico, err := h.store.ObtenerMedicoPorEmail(c.Context(), loginReq.Email)
	if errors.Is(err, database.ErrMedicoNoEncontrado) {
		return c.Status(401).JSON(fiber.Map{
			"error": "Credenciales inválidas",
		})
	}
	if err != nil {
		return errorJSON(c, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(medico.PasswordHash), []byte(loginReq.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{
			"error": "Credenciales inválidas",
		})
	}

	token, err := middleware.GenerateJWT(medico.ID, medico.Nombre)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al generar token",
		})
	}

	return c.JSON(models.LoginResponse{
		Token:  token,
		Medico: medico.Response(),
	})
}

// ObtenerMedicos obtiene todos los médicos registrados
func (h *Handler) ObtenerMedicos(c *fiber.Ctx) error {
	medicos, err := h.store.ObtenerMedicos(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}

	respuesta := make([]models.MedicoResponse, 0, len(medicos))
	for i := range medicos {
		respuesta = append(respuesta, medicos[i].Response())
	}

	return c.JSON(fiber.Map{
		"medicos": respuesta,
		"total":   len(respuesta),
	})
}

// ObtenerMedicoPorID obtiene un médico específico
func (h *Handler) ObtenerMedicoPorID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	medico, err := h.store.ObtenerMedicoPorID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(medico.Response())
}

// ObtenerPerfil obtiene el perfil del médico autenticado
func (h *Handler) ObtenerPerfil(c *fiber.Ctx) error {
	medicoID := c.Locals("medico_id").(int)

	medico, err := h.store.ObtenerMedicoPorID(c.Context(), medicoID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(medico.Response())
}

// ActualizarMedico edita el nombre y la especialidad de un médico
func (h *Handler) ActualizarMedico(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	var req models.ActualizarMedicoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if req.Nombre == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "El nombre es requerido",
		})
	}

	if err := h.store.ActualizarMedico(c.Context(), id, req.Nombre, req.Especialidad); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"mensaje": "Médico actualizado exitosamente",
	})
}

// EliminarMedico elimina un médico junto con sus pacientes y citas
func (h *Handler) EliminarMedico(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	if err := h.store.EliminarMedico(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"mensaje": "Médico eliminado exitosamente junto con sus pacientes y citas",
	})
}
