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

	staffmodel "bperformance_backend/internals/features/operations/staff/model"
	"bperformance_backend/internals/features/scheduler/dto"
	"bperformance_backend/internals/features/scheduler/service"
	helper "bperformance_backend/internals/helpers"
)

// SchedulerController exposes the shift scheduler: day dashboard, slot
// proposals, the email approval landing/finalize pair, history and the daily
// audit PDF. All slot mutations go through the approval service.
type SchedulerController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.ApprovalService
}

func New(db *gorm.DB, v *validator.Validate, svc *service.ApprovalService) *SchedulerController {
	return &SchedulerController{DB: db, Validate: v, Service: svc}
}

// 🟢 GET /api/scheduler/dashboard[?date=YYYY-MM-DD]
func (ctrl *SchedulerController) Dashboard(c *fiber.Ctx) error {
	day := helper.ParseDateOr(c.Query("date"), time.Now())
	from, to := helper.DayBounds(day)

	slots, err := ctrl.Service.SlotsForRange(c.Context(), from, to)
	if err != nil {
		log.Printf("[ERROR] scheduler dashboard slots: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedule")
	}

	staffNames := ctrl.staffNameIndex(c)
	slotViews := make([]dto.ScheduleSlotResponse, 0, len(slots))
	for i := range slots {
		slotViews = append(slotViews, dto.ToScheduleSlotResponse(&slots[i], staffNames[slots[i].ScheduleSlotStaffID]))
	}

	var activeStaff []staffmodel.StaffProfileModel
	if err := ctrl.DB.Where("staff_profile_is_active = ?", true).
		Order("staff_profile_full_name ASC").Find(&activeStaff).Error; err != nil {
		log.Printf("[ERROR] scheduler dashboard staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch staff")
	}

	changesToday, err := ctrl.Service.ChangesCountForDay(c.Context(), time.Now())
	if err != nil {
		log.Printf("[ERROR] scheduler changes count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch change count")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"current_date":  day.Format(helper.DateLayout),
		"slots":         slotViews,
		"staff_members": activeStaff,
		"changes_count": changesToday,
	})
}

// 🟢 POST /api/scheduler/slots
func (ctrl *SchedulerController) ProposeCreate(c *fiber.Ctx) error {
	var req dto.CreateSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	staffID, _ := uuid.Parse(req.StaffID)
	start, err := time.Parse(helper.DateTimeLayout, req.StartTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid start_time format, expected YYYY-MM-DDTHH:MM")
	}
	end, err := time.Parse(helper.DateTimeLayout, req.EndTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid end_time format, expected YYYY-MM-DDTHH:MM")
	}

	actor, err := helper.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	slot, entry, err := ctrl.Service.ProposeCreate(c.Context(), service.ProposeCreateInput{
		StaffID:     staffID,
		Location:    req.Location,
		Start:       start,
		End:         end,
		Description: req.Description,
	}, actor)
	if err != nil {
		return ctrl.workflowError(c, "propose create", err)
	}

	return helper.JsonCreated(c, "Slot proposed, approval requested", fiber.Map{
		"slot": dto.ToScheduleSlotResponse(slot, ""),
		"log":  dto.ToChangeLogResponse(entry),
	})
}

// 🟢 POST /api/scheduler/slots/:id/move
func (ctrl *SchedulerController) ProposeMove(c *fiber.Ctx) error {
	slotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid slot id")
	}

	var req dto.MoveSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	start, err := time.Parse(helper.DateTimeLayout, req.StartTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid start_time format, expected YYYY-MM-DDTHH:MM")
	}
	end, err := time.Parse(helper.DateTimeLayout, req.EndTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid end_time format, expected YYYY-MM-DDTHH:MM")
	}

	actor, err := helper.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	slot, entry, err := ctrl.Service.ProposeMove(c.Context(), slotID, start, end, actor)
	if err != nil {
		return ctrl.workflowError(c, "propose move", err)
	}

	return helper.JsonOK(c, "Move proposed, approval requested", fiber.Map{
		"slot": dto.ToScheduleSlotResponse(slot, ""),
		"log":  dto.ToChangeLogResponse(entry),
	})
}

// 🛑 POST /api/scheduler/slots/:id/delete
func (ctrl *SchedulerController) ProposeDelete(c *fiber.Ctx) error {
	slotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid slot id")
	}

	actor, err := helper.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	slot, entry, err := ctrl.Service.ProposeDelete(c.Context(), slotID, actor)
	if err != nil {
		return ctrl.workflowError(c, "propose delete", err)
	}

	return helper.JsonOK(c, "Deletion proposed, approval requested", fiber.Map{
		"slot": dto.ToScheduleSlotResponse(slot, ""),
		"log":  dto.ToChangeLogResponse(entry),
	})
}

// 🟢 GET /api/scheduler/history
func (ctrl *SchedulerController) History(c *fiber.Ctx) error {
	entries, err := ctrl.Service.History(c.Context())
	if err != nil {
		log.Printf("[ERROR] scheduler history: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch history")
	}
	views := make([]dto.ChangeLogResponse, 0, len(entries))
	for i := range entries {
		views = append(views, dto.ToChangeLogResponse(&entries[i]))
	}
	return helper.JsonOK(c, "", views)
}

// 🟢 GET /api/scheduler/approval/:log_id/:action
//
// Landing page data for the link embedded in the approval email. The human
// confirms here, then the client posts to the finalize endpoint.
func (ctrl *SchedulerController) ApprovalLanding(c *fiber.Ctx) error {
	logID, err := uuid.Parse(c.Params("log_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid log id")
	}
	action := c.Params("action")
	if action != string(service.DecisionApprove) && action != string(service.DecisionReject) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Action must be approve or reject")
	}

	entry, err := ctrl.Service.LogByID(c.Context(), logID)
	if err != nil {
		return ctrl.workflowError(c, "approval landing", err)
	}
	return helper.JsonOK(c, "", fiber.Map{
		"log":    dto.ToChangeLogResponse(entry),
		"action": action,
	})
}

// 🟢 POST /api/scheduler/finalize/:log_id
func (ctrl *SchedulerController) Finalize(c *fiber.Ctx) error {
	logID, err := uuid.Parse(c.Params("log_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid log id")
	}

	var req dto.ResolveRequest
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

	entry, err := ctrl.Service.Resolve(c.Context(), logID, service.Decision(req.Action), actor, req.Comments)
	if err != nil {
		return ctrl.workflowError(c, "finalize", err)
	}
	return helper.JsonOK(c, "Decision recorded", dto.ToChangeLogResponse(entry))
}

// 🟢 GET /api/scheduler/export/pdf/:date
func (ctrl *SchedulerController) ExportDayPDF(c *fiber.Ctx) error {
	day := helper.ParseDateOr(c.Params("date"), time.Now())

	pdfBytes, err := ctrl.Service.BuildDayAuditPDF(c.Context(), day)
	if err != nil {
		log.Printf("[ERROR] scheduler pdf: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate PDF")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="Schedule_Log_%s.pdf"`, day.Format(helper.DateLayout)))
	return c.Send(pdfBytes)
}

func (ctrl *SchedulerController) workflowError(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyResolved):
		return helper.JsonError(c, fiber.StatusConflict, "This change has already been resolved")
	case errors.Is(err, service.ErrValidation):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Printf("[ERROR] scheduler %s: %v", op, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Scheduler operation failed")
	}
}

func (ctrl *SchedulerController) staffNameIndex(c *fiber.Ctx) map[uuid.UUID]string {
	var staff []staffmodel.StaffProfileModel
	if err := ctrl.DB.WithContext(c.Context()).Find(&staff).Error; err != nil {
		log.Printf("[ERROR] staff name index: %v", err)
		return map[uuid.UUID]string{}
	}
	idx := make(map[uuid.UUID]string, len(staff))
	for i := range staff {
		idx[staff[i].StaffProfileID] = staff[i].StaffProfileFullName
	}
	return idx
}
