package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bperformance_backend/internals/features/operations/reports/dto"
	"bperformance_backend/internals/features/operations/reports/model"
	helper "bperformance_backend/internals/helpers"
)

// MetricController updates individual score cells on the daily report grid.
type MetricController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMetricController(db *gorm.DB, v *validator.Validate) *MetricController {
	return &MetricController{DB: db, Validate: v}
}

// 🟢 PUT /api/reports/metrics/:metric_id/score
func (ctrl *MetricController) UpdateScore(c *fiber.Ctx) error {
	metric, err := ctrl.load(c)
	if metric == nil {
		return err
	}
	var req dto.MetricScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if err := ctrl.DB.Model(metric).
		Update("staff_metric_score", req.Score).Error; err != nil {
		log.Printf("[ERROR] update metric score: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update score")
	}
	return helper.JsonUpdated(c, "Score updated", metric)
}

// 🟢 PUT /api/reports/metrics/:metric_id/notes
func (ctrl *MetricController) SaveNote(c *fiber.Ctx) error {
	metric, err := ctrl.load(c)
	if metric == nil {
		return err
	}
	var req dto.MetricNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.DB.Model(metric).
		Update("staff_metric_notes", req.Notes).Error; err != nil {
		log.Printf("[ERROR] save metric note: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save note")
	}
	return helper.JsonUpdated(c, "Note saved", metric)
}

func (ctrl *MetricController) load(c *fiber.Ctx) (*model.StaffMetricModel, error) {
	id, err := uuid.Parse(c.Params("metric_id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid metric id")
	}
	var metric model.StaffMetricModel
	if err := ctrl.DB.First(&metric, "staff_metric_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Metric not found")
		}
		log.Printf("[ERROR] load metric: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch metric")
	}
	return &metric, nil
}
