package middleware

import (
	"time"

	"github.com/clinicadmn/clinica-backend/config"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware registra todas las peticiones HTTP con el logger estructurado
func LoggingMiddleware() fiber.Handler {
	log := config.GetLogrusInstance()

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		fields := logrus.Fields{
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      c.Response().StatusCode(),
			"duration_ms": time.Since(start).Milliseconds(),
			"ip":          c.IP(),
		}
		if medicoID := c.Locals("medico_id"); medicoID != nil {
			fields["medico_id"] = medicoID
		}

		status := c.Response().StatusCode()
		switch {
		case status >= 500:
			log.WithFields(fields).Error("petición fallida")
		case status >= 400:
			log.WithFields(fields).Warn("petición rechazada")
		default:
			log.WithFields(fields).Info("petición atendida")
		}

		return err
	}
}
