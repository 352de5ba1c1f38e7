package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthChecker reports whether the store is reachable.
type HealthChecker interface {
	Ping(c *fiber.Ctx) error
}

func BaseRoutes(app *fiber.App, health HealthChecker) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("SoundWave server is running")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if health == nil || health.Ping(c) != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
