package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bperformance_backend/internals/features/operations/staff/controller"
)

// StaffRoutes mounts staff profiles under an authenticated group.
func StaffRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.New(db, v)

	staff := api.Group("/staff")

	staff.Get("/", ctrl.List)
	staff.Post("/", ctrl.Create)

	staff.Delete("/warnings/:id", ctrl.DeleteWarning)
	staff.Delete("/notes/:id", ctrl.DeleteNote)

	staff.Get("/:id", ctrl.Detail)
	staff.Put("/:id", ctrl.Update)
	staff.Post("/:id/photo", ctrl.UploadPhoto)
	staff.Post("/:id/warnings", ctrl.AddWarning)
	staff.Post("/:id/notes", ctrl.AddNote)
	staff.Get("/:id/export/pdf", ctrl.ExportPDF)
}
