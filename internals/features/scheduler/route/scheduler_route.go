package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bperformance_backend/internals/configs"
	"bperformance_backend/internals/features/scheduler/controller"
	"bperformance_backend/internals/features/scheduler/service"
	"bperformance_backend/internals/notifier"
)

// SchedulerRoutes mounts the shift scheduler under an authenticated group.
func SchedulerRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate, mailer notifier.Mailer) {
	svc := service.NewApprovalService(db, mailer, configs.PublicBaseURL, configs.ApproverEmail)
	ctrl := controller.New(db, v, svc)

	scheduler := api.Group("/scheduler")

	scheduler.Get("/dashboard", ctrl.Dashboard)
	scheduler.Get("/history", ctrl.History)
	scheduler.Get("/export/pdf/:date", ctrl.ExportDayPDF)

	scheduler.Post("/slots", ctrl.ProposeCreate)
	scheduler.Post("/slots/:id/move", ctrl.ProposeMove)
	scheduler.Post("/slots/:id/delete", ctrl.ProposeDelete)

	scheduler.Get("/approval/:log_id/:action", ctrl.ApprovalLanding)
	scheduler.Post("/finalize/:log_id", ctrl.Finalize)
}
