package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bperformance_backend/internals/features/operations/masterdata/controller"
)

// MasterdataRoutes mounts the settings CRUD under an authenticated group.
func MasterdataRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.New(db, v)

	settings := api.Group("/settings")

	settings.Get("/departments", ctrl.ListDepartments)
	settings.Post("/departments", ctrl.CreateDepartment)
	settings.Delete("/departments/:id", ctrl.DeleteDepartment)

	settings.Get("/clients", ctrl.ListClients)
	settings.Post("/clients", ctrl.CreateClient)
	settings.Delete("/clients/:id", ctrl.DeleteClient)

	settings.Get("/categories", ctrl.ListCategories)
	settings.Post("/categories", ctrl.CreateCategory)
	settings.Delete("/categories/:id", ctrl.DeleteCategory)

	settings.Get("/criteria", ctrl.ListCriteria)
	settings.Post("/criteria", ctrl.CreateCriteria)
	settings.Delete("/criteria/:id", ctrl.DeleteCriteria)
}
