package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bperformance_backend/internals/features/checkforms/controller"
	"bperformance_backend/internals/middlewares"
	"bperformance_backend/internals/notifier"
)

// CheckFormAdminRoutes mounts the internal check-form management endpoints
// under an authenticated group.
func CheckFormAdminRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate, mailer notifier.Mailer) {
	ctrl := controller.NewAdmin(db, v, mailer)

	forms := api.Group("/checkforms")

	forms.Get("/admin", ctrl.Overview)
	forms.Post("/folders", ctrl.CreateFolder)
	forms.Get("/templates", ctrl.ListTemplates)
	forms.Post("/templates", ctrl.CreateTemplate)
	forms.Post("/templates/:id/logo", ctrl.UploadLogo)
	forms.Post("/share", ctrl.Share)
	forms.Post("/submissions/:id/file", ctrl.FileSubmission)
}

// CheckFormPublicRoutes mounts the tokenized external form endpoints. No
// authentication; rate limited instead.
func CheckFormPublicRoutes(app fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.NewPublic(db, v)

	public := app.Group("/api/checkforms/view", middlewares.ExternalFormRateLimiter())
	public.Get("/:token", ctrl.View)
	public.Post("/:token", ctrl.Submit)
}
