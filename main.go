package main

import (
	"context"
	"os"

	"github.com/clinicadmn/clinica-backend/config"
	"github.com/clinicadmn/clinica-backend/database"
	"github.com/clinicadmn/clinica-backend/handlers"
	"github.com/clinicadmn/clinica-backend/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	log := config.GetLogrusInstance()

	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Warn("No se pudo cargar el archivo .env")
	}

	// Conectar a la base de datos y crear el esquema
	database.ConnectDB()
	defer database.CloseDB()
	if err := database.InitSchema(context.Background()); err != nil {
		log.Fatalf("Error al inicializar el esquema: %v", err)
	}

	// Crear instancia de Fiber con configuración
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
		AppName: "Clinica Records Service API v1.0.0",
	})

	// Configurar rutas con el almacén sobre el pool de conexiones
	h := handlers.New(database.NewStore(database.GetDB()))
	routes.SetupRoutes(app, h)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{
			"error":   "Ruta no encontrada",
			"message": "La ruta solicitada no existe en este servidor",
			"path":    c.Path(),
			"method":  c.Method(),
		})
	})

	// Obtener puerto del entorno o usar 3000 por defecto
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Infof("Servidor Clinica Records Service iniciado en puerto %s", port)
	log.Fatal(app.Listen(":" + port))
}
