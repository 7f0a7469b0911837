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

// TicketController handles ticket rows inside a daily report. Minute totals
// (work, travel, response) are recomputed from the clock strings on every
// create and update.
type TicketController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTicketController(db *gorm.DB, v *validator.Validate) *TicketController {
	return &TicketController{DB: db, Validate: v}
}

// 🟢 POST /api/reports/:id/tickets — multipart, optional repeated "attachments".
func (ctrl *TicketController) Add(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report id")
	}
	var count int64
	if err := ctrl.DB.Model(&model.DailyReportModel{}).
		Where("daily_report_id = ?", reportID).Count(&count).Error; err != nil || count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}

	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	ticket := req.ToModel(reportID)
	if err := ctrl.DB.Create(ticket).Error; err != nil {
		log.Printf("[ERROR] create ticket: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create ticket")
	}

	ctrl.storeAttachments(c, ticket.TicketEntryID)
	return helper.JsonCreated(c, "Ticket added", ticket)
}

// 🟢 PUT /api/reports/tickets/:ticket_id
func (ctrl *TicketController) Update(c *fiber.Ctx) error {
	ticketID, err := uuid.Parse(c.Params("ticket_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ticket id")
	}
	var existing model.TicketEntryModel
	if err := ctrl.DB.First(&existing, "ticket_entry_id = ?", ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ticket not found")
		}
		log.Printf("[ERROR] load ticket: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ticket")
	}

	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	updated := req.ToModel(existing.TicketEntryReportID)
	updated.TicketEntryID = existing.TicketEntryID
	updated.TicketEntryCreatedAt = existing.TicketEntryCreatedAt
	if err := ctrl.DB.Save(updated).Error; err != nil {
		log.Printf("[ERROR] update ticket: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update ticket")
	}

	ctrl.storeAttachments(c, updated.TicketEntryID)
	return helper.JsonUpdated(c, "Ticket updated", updated)
}

// 🛑 DELETE /api/reports/tickets/:ticket_id
func (ctrl *TicketController) Delete(c *fiber.Ctx) error {
	ticketID, err := uuid.Parse(c.Params("ticket_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ticket id")
	}
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.TicketAttachmentModel{}, "ticket_attachment_ticket_id = ?", ticketID).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.TicketEntryModel{}, "ticket_entry_id = ?", ticketID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Ticket not found")
	}
	if err != nil {
		log.Printf("[ERROR] delete ticket: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete ticket")
	}
	return helper.JsonDeleted(c, "Ticket deleted", nil)
}

// 🟢 GET /api/reports/tickets[?staff_id&search&status&sort_by&order&page&per_page]
func (ctrl *TicketController) Search(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.TicketEntryModel{})
	if staffID, err := uuid.Parse(c.Query("staff_id")); err == nil {
		q = q.Where("ticket_entry_staff_id = ?", staffID)
	}
	if search := c.Query("search"); search != "" {
		if id, err := uuid.Parse(search); err == nil {
			q = q.Where("ticket_entry_id = ?", id)
		} else {
			q = q.Where("ticket_entry_description LIKE ?", "%"+search+"%")
		}
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("ticket_entry_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count tickets: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tickets")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "ticket_entry_created_at",
		"start_time": "ticket_entry_start_time",
		"status":     "ticket_entry_status",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sort")
	}

	var tickets []model.TicketEntryModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&tickets).Error; err != nil {
		log.Printf("[ERROR] search tickets: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tickets")
	}
	return helper.JsonList(c, "", tickets, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctrl *TicketController) storeAttachments(c *fiber.Ctx, ticketID uuid.UUID) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return
	}
	for _, fileHeader := range form.File["attachments"] {
		path, err := helper.SaveUpload(c, fileHeader, "ticket_attachments")
		if err != nil {
			log.Printf("[WARN] ticket attachment skipped: %v", err)
			continue
		}
		att := model.TicketAttachmentModel{
			TicketAttachmentTicketID: ticketID,
			TicketAttachmentFilePath: path,
		}
		if err := ctrl.DB.Create(&att).Error; err != nil {
			log.Printf("[WARN] ticket attachment not recorded: %v", err)
		}
	}
}
