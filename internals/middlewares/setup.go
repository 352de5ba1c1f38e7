package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"soundwave_backend/internals/configs"
	"soundwave_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global sebelum route didaftarkan
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware(cfg.TimeZone))
	app.Use(CorsMiddleware(cfg.CorsAllowOrigins))
	app.Use(GlobalRateLimiter())
}
