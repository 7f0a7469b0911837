package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bperformance_backend/internals/features/users/auth/controller"
	"bperformance_backend/internals/middlewares"
	authMiddleware "bperformance_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.New(db, v)

	public := app.Group("/api/auth")
	public.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	private := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	private.Post("/register", ctrl.Register)
	private.Get("/me", ctrl.Me)
	private.Post("/users/:id/deactivate", ctrl.Deactivate)
}
