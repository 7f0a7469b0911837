package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bperformance_backend/internals/features/operations/staff/dto"
	"bperformance_backend/internals/features/operations/staff/model"
	"bperformance_backend/internals/features/operations/staff/service"
	helper "bperformance_backend/internals/helpers"
)

// StaffController manages staff profiles, their warnings and notes, the
// 30-day performance stats and the PDF export.
type StaffController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Stats    *service.StaffStatsService
}

func New(db *gorm.DB, v *validator.Validate) *StaffController {
	return &StaffController{DB: db, Validate: v, Stats: service.NewStaffStatsService(db)}
}

// 🟢 GET /api/staff[?all=true]
func (ctrl *StaffController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Order("staff_profile_full_name ASC")
	if c.Query("all") != "true" {
		q = q.Where("staff_profile_is_active = ?", true)
	}
	var items []model.StaffProfileModel
	if err := q.Find(&items).Error; err != nil {
		log.Printf("[ERROR] list staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch staff")
	}
	return helper.JsonOK(c, "", items)
}

// 🟢 POST /api/staff
func (ctrl *StaffController) Create(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	item := req.ToModel()
	if err := ctrl.DB.Create(item).Error; err != nil {
		log.Printf("[ERROR] create staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create staff profile")
	}
	return helper.JsonCreated(c, "Staff profile created", item)
}

// 🟢 GET /api/staff/:id — profile, warnings, notes and last-30-day stats.
func (ctrl *StaffController) Detail(c *fiber.Ctx) error {
	staff, err := ctrl.load(c)
	if staff == nil {
		return err
	}

	var warnings []model.StaffWarningModel
	if err := ctrl.DB.Where("staff_warning_staff_id = ?", staff.StaffProfileID).
		Order("staff_warning_date DESC").Find(&warnings).Error; err != nil {
		log.Printf("[ERROR] staff warnings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch warnings")
	}
	var notes []model.StaffNoteModel
	if err := ctrl.DB.Where("staff_note_staff_id = ?", staff.StaffProfileID).
		Order("staff_note_created_at DESC").Find(&notes).Error; err != nil {
		log.Printf("[ERROR] staff notes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notes")
	}

	stats, err := ctrl.Stats.Last30Days(c.Context(), staff.StaffProfileID)
	if err != nil {
		log.Printf("[ERROR] staff stats: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	return helper.JsonOK(c, "", dto.StaffDetailResponse{
		Staff:    *staff,
		Warnings: warnings,
		Notes:    notes,
		Stats:    stats,
	})
}

// 🟢 PUT /api/staff/:id
func (ctrl *StaffController) Update(c *fiber.Ctx) error {
	staff, err := ctrl.load(c)
	if staff == nil {
		return err
	}

	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	departmentID, _ := uuid.Parse(req.DepartmentID)
	updates := map[string]interface{}{
		"staff_profile_full_name":     req.FullName,
		"staff_profile_department_id": departmentID,
	}
	if req.IsActive != nil {
		updates["staff_profile_is_active"] = *req.IsActive
	}
	if err := ctrl.DB.Model(staff).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update staff profile")
	}
	return helper.JsonUpdated(c, "Staff profile updated", staff)
}

// 🟢 POST /api/staff/:id/photo — multipart "photo", resized thumbnail stored
// alongside the original.
func (ctrl *StaffController) UploadPhoto(c *fiber.Ctx) error {
	staff, err := ctrl.load(c)
	if staff == nil {
		return err
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing photo file")
	}
	path, err := helper.SaveImageUpload(c, fileHeader, "staff_pics")
	if err != nil {
		log.Printf("[ERROR] staff photo upload: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not process image upload")
	}

	if err := ctrl.DB.Model(staff).
		Update("staff_profile_picture_path", path).Error; err != nil {
		log.Printf("[ERROR] staff photo save: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save photo")
	}
	return helper.JsonUpdated(c, "Photo updated", fiber.Map{"picture_path": path})
}

// 🟢 POST /api/staff/:id/warnings — multipart form, optional "attachment".
func (ctrl *StaffController) AddWarning(c *fiber.Ctx) error {
	staff, err := ctrl.load(c)
	if staff == nil {
		return err
	}

	var req dto.WarningRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	warning := req.ToModel(staff.StaffProfileID)
	if fileHeader, err := c.FormFile("attachment"); err == nil && fileHeader != nil {
		path, err := helper.SaveUpload(c, fileHeader, "warnings")
		if err != nil {
			log.Printf("[ERROR] warning attachment: %v", err)
			return helper.JsonError(c, fiber.StatusBadRequest, "Could not store attachment")
		}
		warning.StaffWarningAttachmentPath = &path
	}

	if err := ctrl.DB.Create(warning).Error; err != nil {
		log.Printf("[ERROR] create warning: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record warning")
	}
	return helper.JsonCreated(c, "Warning recorded", warning)
}

// 🛑 DELETE /api/staff/warnings/:id
func (ctrl *StaffController) DeleteWarning(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid warning id")
	}
	res := ctrl.DB.Delete(&model.StaffWarningModel{}, "staff_warning_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete warning: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete warning")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Warning not found")
	}
	return helper.JsonDeleted(c, "Warning deleted", nil)
}

// 🟢 POST /api/staff/:id/notes
func (ctrl *StaffController) AddNote(c *fiber.Ctx) error {
	staff, err := ctrl.load(c)
	if staff == nil {
		return err
	}

	var req dto.NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	actor, err := helper.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	actorID := actor.ID

	note := &model.StaffNoteModel{
		StaffNoteStaffID:       staff.StaffProfileID,
		StaffNoteContent:       req.Content,
		StaffNoteCreatedByID:   &actorID,
		StaffNoteCreatedByName: actor.Name,
	}
	if err := ctrl.DB.Create(note).Error; err != nil {
		log.Printf("[ERROR] create note: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record note")
	}
	return helper.JsonCreated(c, "Note recorded", note)
}

// 🛑 DELETE /api/staff/notes/:id
func (ctrl *StaffController) DeleteNote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid note id")
	}
	res := ctrl.DB.Delete(&model.StaffNoteModel{}, "staff_note_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete note: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete note")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Note not found")
	}
	return helper.JsonDeleted(c, "Note deleted", nil)
}

// 🟢 GET /api/staff/:id/export/pdf[?start_date&end_date] — defaults to the
// last 30 days.
func (ctrl *StaffController) ExportPDF(c *fiber.Ctx) error {
	staff, err := ctrl.load(c)
	if staff == nil {
		return err
	}

	end := helper.ParseDateOr(c.Query("end_date"), time.Now())
	start := helper.ParseDateOr(c.Query("start_date"), end.AddDate(0, 0, -30))

	pdfBytes, err := ctrl.Stats.BuildStaffPDF(c.Context(), staff, start, end)
	if err != nil {
		log.Printf("[ERROR] staff pdf: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate PDF")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="Staff_Report_%s_%s.pdf"`,
			staff.StaffProfileFullName, end.Format(helper.DateLayout)))
	return c.Send(pdfBytes)
}

func (ctrl *StaffController) load(c *fiber.Ctx) (*model.StaffProfileModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid staff id")
	}
	var staff model.StaffProfileModel
	if err := ctrl.DB.First(&staff, "staff_profile_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Staff not found")
		}
		log.Printf("[ERROR] load staff: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch staff")
	}
	return &staff, nil
}
