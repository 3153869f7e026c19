package routes

import (
	"github.com/clinicadmn/clinica-backend/handlers"
	"github.com/clinicadmn/clinica-backend/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes configura todas las rutas de la aplicación
func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	// Middleware global
	app.Use(recover.New())
	app.Use(middleware.LoggingMiddleware())
	app.Use(middleware.SecurityHeaders())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Ruta de salud del sistema
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Clinica Records Service API",
			"version": "1.0.0",
		})
	})

	// Grupo de API
	api := app.Group("/api/v1", middleware.DefaultRateLimiter())

	// === RUTAS PÚBLICAS (Sin autenticación) ===
	auth := api.Group("/auth", middleware.AuthRateLimiter())
	auth.Post("/register", h.RegistrarMedico)
	auth.Post("/login", h.Login)

	// === RUTAS PROTEGIDAS (Requieren autenticación) ===
	protected := api.Group("/", middleware.JWTMiddleware())

	// --- RUTAS DE MÉDICOS ---
	medicos := protected.Group("/medicos")
	medicos.Get("/", h.ObtenerMedicos)
	medicos.Get("/perfil", h.ObtenerPerfil)
	medicos.Get("/:id", h.ObtenerMedicoPorID)
	medicos.Put("/:id", h.ActualizarMedico)
	medicos.Delete("/:id", h.EliminarMedico)

	// --- RUTAS DE PACIENTES ---
	pacientes := protected.Group("/pacientes")
	pacientes.Post("/", h.RegistrarPaciente)
	pacientes.Get("/medico/:medico_id", h.ObtenerPacientesPorMedico)
	pacientes.Get("/:id", h.ObtenerPacientePorID)
	pacientes.Get("/:id/historial", h.ObtenerHistorialPaciente)
	pacientes.Delete("/:id", h.EliminarPaciente)

	// --- RUTAS DE CITAS ---
	citas := protected.Group("/citas")
	citas.Post("/", h.AgendarCita)
	citas.Get("/paciente/:paciente_id", h.ObtenerCitasPorPaciente)
	citas.Get("/medico/:medico_id", h.ObtenerCitasPorMedico)
	citas.Get("/:id", h.ObtenerCitaPorID)
	citas.Put("/:id/cancelar", h.CancelarCita)
}
