// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkformRoute "bperformance_backend/internals/features/checkforms/route"
	masterdataRoute "bperformance_backend/internals/features/operations/masterdata/route"
	reportsRoute "bperformance_backend/internals/features/operations/reports/route"
	staffRoute "bperformance_backend/internals/features/operations/staff/route"
	schedulerRoute "bperformance_backend/internals/features/scheduler/route"
	authRoute "bperformance_backend/internals/features/users/auth/route"
	authMiddleware "bperformance_backend/internals/middlewares/auth"
	"bperformance_backend/internals/notifier"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()
	mailer := notifier.NewFromEnv()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db, v)

	log.Println("[INFO] Setting up external CheckFormRoutes...")
	checkformRoute.CheckFormPublicRoutes(app, db, v)

	// ===================== PRIVATE =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	masterdataRoute.MasterdataRoutes(api, db, v)
	staffRoute.StaffRoutes(api, db, v)
	reportsRoute.ReportsRoutes(api, db, v, mailer)
	schedulerRoute.SchedulerRoutes(api, db, v, mailer)
	checkformRoute.CheckFormAdminRoutes(api, db, v, mailer)
}
