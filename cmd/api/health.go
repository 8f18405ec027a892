package main

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

// healthHandler reports whether the hosted database answers a ping.
func healthHandler(db pinger, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := db.PingContext(c.UserContext()); err != nil {
			logger.Warn("health check failed", zap.Error(err))
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status": "ok",
		})
	}
}
