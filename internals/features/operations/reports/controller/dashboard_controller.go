package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bperformance_backend/internals/features/operations/reports/service"
	helper "bperformance_backend/internals/helpers"
)

// DashboardController serves the performance overview charts.
type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{Service: service.NewDashboardService(db)}
}

// 🟢 GET /api/dashboard[?period=daily|weekly|monthly|yearly][&start_date&end_date]
//
// A custom start_date/end_date pair overrides the period keyword.
func (ctrl *DashboardController) Overview(c *fiber.Ctx) error {
	var from, to time.Time
	var label string

	startStr, endStr := c.Query("start_date"), c.Query("end_date")
	if startStr != "" && endStr != "" {
		from = helper.ParseDateOr(startStr, time.Time{})
		to = helper.ParseDateOr(endStr, time.Time{})
	}
	if from.IsZero() || to.IsZero() {
		from, to, label = service.ResolvePeriod(c.Query("period", "monthly"), time.Now())
	} else {
		label = fmt.Sprintf("%s to %s", from.Format(helper.DateLayout), to.Format(helper.DateLayout))
	}

	stats, err := ctrl.Service.Build(c.Context(), from, to, label)
	if err != nil {
		log.Printf("[ERROR] dashboard: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}
	return helper.JsonOK(c, "", stats)
}
