package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bperformance_backend/internals/features/checkforms/dto"
	"bperformance_backend/internals/features/checkforms/model"
	"bperformance_backend/internals/features/checkforms/service"
	helper "bperformance_backend/internals/helpers"
)

// CheckFormPublicController is the unauthenticated side: the external
// recipient opens the form by token and submits their answers once.
type CheckFormPublicController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPublic(db *gorm.DB, v *validator.Validate) *CheckFormPublicController {
	return &CheckFormPublicController{DB: db, Validate: v}
}

// 🟢 GET /api/checkforms/view/:token
func (ctrl *CheckFormPublicController) View(c *fiber.Ctx) error {
	submission, err := ctrl.loadByToken(c)
	if submission == nil {
		return err
	}
	if submission.IsClosed() {
		return helper.JsonError(c, fiber.StatusGone, "This form has already been submitted")
	}

	var template model.CheckFormTemplateModel
	if err := ctrl.DB.First(&template, "check_form_template_id = ?", submission.CheckFormSubmissionTemplateID).Error; err != nil {
		log.Printf("[ERROR] external form template: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load form")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"submission": submission,
		"template":   template,
	})
}

// 🟢 POST /api/checkforms/view/:token
func (ctrl *CheckFormPublicController) Submit(c *fiber.Ctx) error {
	submission, err := ctrl.loadByToken(c)
	if submission == nil {
		return err
	}
	if submission.IsClosed() {
		return helper.JsonError(c, fiber.StatusGone, "This form has already been submitted")
	}

	var req dto.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var template model.CheckFormTemplateModel
	if err := ctrl.DB.First(&template, "check_form_template_id = ?", submission.CheckFormSubmissionTemplateID).Error; err != nil {
		log.Printf("[ERROR] submit template: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load form")
	}

	content, err := service.BuildAnswers(template.CheckFormTemplateItems, &req)
	if err != nil {
		log.Printf("[ERROR] shape answers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process answers")
	}

	now := time.Now()
	if err := ctrl.DB.Model(submission).Updates(map[string]interface{}{
		"check_form_submission_content":           content,
		"check_form_submission_submitted_by_name": req.SubmittedByName,
		"check_form_submission_submitted_at":      now,
		"check_form_submission_status":            model.SubmissionCompleted,
	}).Error; err != nil {
		log.Printf("[ERROR] save submission: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save submission")
	}

	return helper.JsonOK(c, "Thank you! Your submission has been received.", nil)
}

func (ctrl *CheckFormPublicController) loadByToken(c *fiber.Ctx) (*model.CheckFormSubmissionModel, error) {
	token, err := uuid.Parse(c.Params("token"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid form token")
	}
	var submission model.CheckFormSubmissionModel
	if err := ctrl.DB.First(&submission, "check_form_submission_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Form not found")
		}
		log.Printf("[ERROR] load submission by token: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load form")
	}
	return &submission, nil
}
