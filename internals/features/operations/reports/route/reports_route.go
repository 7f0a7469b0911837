package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bperformance_backend/internals/features/operations/reports/controller"
	"bperformance_backend/internals/notifier"
)

// ReportsRoutes mounts the daily report editor, tickets, metrics, exports and
// the dashboard under an authenticated group.
func ReportsRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate, mailer notifier.Mailer) {
	reportCtrl := controller.New(db, v, mailer)
	ticketCtrl := controller.NewTicketController(db, v)
	metricCtrl := controller.NewMetricController(db, v)
	dashCtrl := controller.NewDashboardController(db)

	api.Get("/dashboard", dashCtrl.Overview)

	reports := api.Group("/reports")

	reports.Get("/daily", reportCtrl.Daily)
	reports.Get("/archive", reportCtrl.Archive)
	reports.Get("/export/xlsx", reportCtrl.ExportExcel)
	reports.Post("/weekly-email", reportCtrl.SendWeeklyEmail)

	reports.Get("/tickets", ticketCtrl.Search)
	reports.Put("/tickets/:ticket_id", ticketCtrl.Update)
	reports.Delete("/tickets/:ticket_id", ticketCtrl.Delete)

	reports.Put("/metrics/:metric_id/score", metricCtrl.UpdateScore)
	reports.Put("/metrics/:metric_id/notes", metricCtrl.SaveNote)

	reports.Post("/:id/tickets", ticketCtrl.Add)
	reports.Post("/:id/submit", reportCtrl.MarkSubmitted)
	reports.Post("/:id/notes", reportCtrl.SaveManagerNotes)
	reports.Get("/:id/export/pdf", reportCtrl.ExportPDF)
}
