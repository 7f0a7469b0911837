package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bperformance_backend/internals/configs"
	"bperformance_backend/internals/features/checkforms/dto"
	"bperformance_backend/internals/features/checkforms/model"
	helper "bperformance_backend/internals/helpers"
	"bperformance_backend/internals/notifier"
)

// CheckFormAdminController covers the internal side: folders, the template
// builder, sharing a form by email and filing completed submissions.
type CheckFormAdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Mailer   notifier.Mailer
}

func NewAdmin(db *gorm.DB, v *validator.Validate, mailer notifier.Mailer) *CheckFormAdminController {
	return &CheckFormAdminController{DB: db, Validate: v, Mailer: mailer}
}

// 🟢 GET /api/checkforms/admin[?folder=<id>]
//
// Inbox is every COMPLETED submission not yet filed; selecting a folder also
// returns its filed submissions.
func (ctrl *CheckFormAdminController) Overview(c *fiber.Ctx) error {
	var folders []model.CheckFormFolderModel
	if err := ctrl.DB.Order("check_form_folder_name ASC").Find(&folders).Error; err != nil {
		log.Printf("[ERROR] checkform folders: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch folders")
	}

	var inbox []model.CheckFormSubmissionModel
	if err := ctrl.DB.
		Where("check_form_submission_status = ? AND check_form_submission_folder_id IS NULL", model.SubmissionCompleted).
		Order("check_form_submission_submitted_at DESC").
		Find(&inbox).Error; err != nil {
		log.Printf("[ERROR] checkform inbox: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch inbox")
	}

	payload := fiber.Map{"folders": folders, "inbox": inbox}

	if folderID, err := uuid.Parse(c.Query("folder")); err == nil {
		var filed []model.CheckFormSubmissionModel
		if err := ctrl.DB.
			Where("check_form_submission_folder_id = ?", folderID).
			Order("check_form_submission_submitted_at DESC").
			Find(&filed).Error; err != nil {
			log.Printf("[ERROR] checkform folder view: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch folder")
		}
		payload["selected_folder_id"] = folderID
		payload["selected_folder_submissions"] = filed
	}

	return helper.JsonOK(c, "", payload)
}

// 🟢 POST /api/checkforms/folders
func (ctrl *CheckFormAdminController) CreateFolder(c *fiber.Ctx) error {
	var req dto.FolderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	folder := model.CheckFormFolderModel{CheckFormFolderName: req.Name}
	if err := ctrl.DB.Create(&folder).Error; err != nil {
		log.Printf("[ERROR] create folder: %v", err)
		return helper.JsonError(c, fiber.StatusConflict, "Folder already exists")
	}
	return helper.JsonCreated(c, "Folder created", folder)
}

// 🟢 GET /api/checkforms/templates
func (ctrl *CheckFormAdminController) ListTemplates(c *fiber.Ctx) error {
	var templates []model.CheckFormTemplateModel
	if err := ctrl.DB.Order("check_form_template_created_at DESC").Find(&templates).Error; err != nil {
		log.Printf("[ERROR] list templates: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch templates")
	}
	return helper.JsonOK(c, "", templates)
}

// 🟢 POST /api/checkforms/templates
func (ctrl *CheckFormAdminController) CreateTemplate(c *fiber.Ctx) error {
	var req dto.TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	items, err := json.Marshal(req.Items)
	if err != nil || req.Items == nil {
		items = []byte("[]")
	}

	template := model.CheckFormTemplateModel{
		CheckFormTemplateTitle:             req.Title,
		CheckFormTemplateInstructions:      req.Instructions,
		CheckFormTemplateItems:             datatypes.JSON(items),
		CheckFormTemplateHasGeneralComment: true,
	}
	if req.HasGeneralComment != nil {
		template.CheckFormTemplateHasGeneralComment = *req.HasGeneralComment
	}
	if actor, err := helper.ActorFromLocals(c); err == nil {
		id := actor.ID
		template.CheckFormTemplateCreatedByID = &id
		template.CheckFormTemplateCreatedByName = actor.Name
	}

	if err := ctrl.DB.Create(&template).Error; err != nil {
		log.Printf("[ERROR] create template: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create template")
	}
	return helper.JsonCreated(c, "Template created", template)
}

// 🟢 POST /api/checkforms/templates/:id/logo — multipart "logo".
func (ctrl *CheckFormAdminController) UploadLogo(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid template id")
	}
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing logo file")
	}
	path, err := helper.SaveImageUpload(c, fileHeader, "company_logos")
	if err != nil {
		log.Printf("[ERROR] logo upload: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not process logo upload")
	}

	res := ctrl.DB.Model(&model.CheckFormTemplateModel{}).
		Where("check_form_template_id = ?", id).
		Update("check_form_template_logo_path", path)
	if res.Error != nil {
		log.Printf("[ERROR] logo save: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save logo")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Template not found")
	}
	return helper.JsonUpdated(c, "Logo updated", fiber.Map{"logo_path": path})
}

// 🟢 POST /api/checkforms/share — creates a SENT submission and emails the
// tokenized link to the recipient.
func (ctrl *CheckFormAdminController) Share(c *fiber.Ctx) error {
	var req dto.ShareRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	templateID, _ := uuid.Parse(req.TemplateID)
	var template model.CheckFormTemplateModel
	if err := ctrl.DB.First(&template, "check_form_template_id = ?", templateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Template not found")
		}
		log.Printf("[ERROR] load template: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch template")
	}

	submission := model.CheckFormSubmissionModel{
		CheckFormSubmissionTemplateID:     template.CheckFormTemplateID,
		CheckFormSubmissionRecipientEmail: req.Recipient,
		CheckFormSubmissionStatus:         model.SubmissionSent,
	}
	if err := ctrl.DB.Create(&submission).Error; err != nil {
		log.Printf("[ERROR] create submission: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create submission")
	}

	link := fmt.Sprintf("%s/api/checkforms/view/%s", configs.PublicBaseURL, submission.CheckFormSubmissionToken)
	body := fmt.Sprintf(
		"<h3>Checklist Request</h3><p>You have been asked to complete: <b>%s</b></p><p><a href=%q>Open the form</a></p>",
		template.CheckFormTemplateTitle, link)
	subject := fmt.Sprintf("Checklist Request: %s", template.CheckFormTemplateTitle)
	if err := ctrl.Mailer.Send([]string{req.Recipient}, subject, body); err != nil {
		log.Printf("[WARN] share email not sent for submission %s: %v", submission.CheckFormSubmissionID, err)
	}

	return helper.JsonCreated(c, "Form shared", submission)
}

// 🟢 POST /api/checkforms/submissions/:id/file
func (ctrl *CheckFormAdminController) FileSubmission(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}
	var req dto.FileSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	folderID, _ := uuid.Parse(req.FolderID)

	var folderCount int64
	if err := ctrl.DB.Model(&model.CheckFormFolderModel{}).
		Where("check_form_folder_id = ?", folderID).Count(&folderCount).Error; err != nil || folderCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Folder not found")
	}

	res := ctrl.DB.Model(&model.CheckFormSubmissionModel{}).
		Where("check_form_submission_id = ?", id).
		Updates(map[string]interface{}{
			"check_form_submission_folder_id": folderID,
			"check_form_submission_status":    model.SubmissionFiled,
		})
	if res.Error != nil {
		log.Printf("[ERROR] file submission: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to file submission")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
	}
	return helper.JsonUpdated(c, "Submission filed", nil)
}
