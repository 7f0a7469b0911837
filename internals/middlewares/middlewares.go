package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"bperformance_backend/internals/middlewares/logger"
)

// SetupMiddlewares registers the base middleware stack.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
