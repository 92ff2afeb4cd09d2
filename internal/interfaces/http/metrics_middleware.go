package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/martinuzal/pharmind-api/internal/infrastructure/metrics"
)

// MetricsMiddleware cuenta cada petición por método, ruta y status. Usa la ruta
// registrada (c.Route().Path) y no el path crudo, para no explotar la cardinalidad
// con los ids.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		metrics.HTTPRequests.WithLabelValues(
			c.Method(), path, strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return err
	}
}
