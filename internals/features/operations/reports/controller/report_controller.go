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

	mastermodel "bperformance_backend/internals/features/operations/masterdata/model"
	staffmodel "bperformance_backend/internals/features/operations/staff/model"
	"bperformance_backend/internals/features/operations/reports/dto"
	"bperformance_backend/internals/features/operations/reports/model"
	"bperformance_backend/internals/features/operations/reports/service"
	helper "bperformance_backend/internals/helpers"
	"bperformance_backend/internals/notifier"
)

// ReportController serves the daily report editor, the archive, PDF/Excel
// exports and the weekly summary email.
type ReportController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	PDF      *service.ReportPDFService
	Export   *service.TicketExportService
	Weekly   *service.WeeklyEmailService
}

func New(db *gorm.DB, v *validator.Validate, mailer notifier.Mailer) *ReportController {
	pdf := service.NewReportPDFService(db)
	return &ReportController{
		DB:       db,
		Validate: v,
		PDF:      pdf,
		Export:   service.NewTicketExportService(db),
		Weekly:   service.NewWeeklyEmailService(db, pdf, mailer),
	}
}

// 🟢 GET /api/reports/daily[?date=YYYY-MM-DD&staff_id&client_id&status]
//
// Get-or-create the report for the date, seed a default metric cell for every
// active staff x criteria pair, and return the day's tickets and metrics.
func (ctrl *ReportController) Daily(c *fiber.Ctx) error {
	day := helper.ParseDateOr(c.Query("date"), time.Now())

	report, err := ctrl.getOrCreateReport(c, day)
	if err != nil {
		log.Printf("[ERROR] daily report: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to open daily report")
	}

	if err := ctrl.seedMetrics(c, report.DailyReportID); err != nil {
		log.Printf("[ERROR] seed metrics: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to initialize metrics")
	}

	ticketQuery := ctrl.DB.Where("ticket_entry_report_id = ?", report.DailyReportID).
		Order("ticket_entry_start_time DESC")
	if staffID, err := uuid.Parse(c.Query("staff_id")); err == nil {
		ticketQuery = ticketQuery.Where("ticket_entry_staff_id = ?", staffID)
	}
	if clientID, err := uuid.Parse(c.Query("client_id")); err == nil {
		ticketQuery = ticketQuery.Where("ticket_entry_client_id = ?", clientID)
	}
	if status := c.Query("status"); status != "" {
		ticketQuery = ticketQuery.Where("ticket_entry_status = ?", status)
	}

	var tickets []model.TicketEntryModel
	if err := ticketQuery.Find(&tickets).Error; err != nil {
		log.Printf("[ERROR] daily tickets: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tickets")
	}

	var metrics []model.StaffMetricModel
	if err := ctrl.DB.Where("staff_metric_report_id = ?", report.DailyReportID).
		Order("staff_metric_staff_id, staff_metric_criteria_id").
		Find(&metrics).Error; err != nil {
		log.Printf("[ERROR] daily metrics: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch metrics")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"report":  report,
		"tickets": tickets,
		"metrics": metrics,
	})
}

// 🟢 GET /api/reports/archive[?start_date&end_date]
func (ctrl *ReportController) Archive(c *fiber.Ctx) error {
	q := ctrl.DB.Order("daily_report_date DESC")
	startStr, endStr := c.Query("start_date"), c.Query("end_date")
	if startStr != "" && endStr != "" {
		start := helper.ParseDateOr(startStr, time.Time{})
		end := helper.ParseDateOr(endStr, time.Time{})
		q = q.Where("daily_report_date BETWEEN ? AND ?", start, end)
	}

	var reports []model.DailyReportModel
	if err := q.Find(&reports).Error; err != nil {
		log.Printf("[ERROR] report archive: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch archive")
	}
	return helper.JsonOK(c, "", reports)
}

// 🟢 POST /api/reports/:id/submit
func (ctrl *ReportController) MarkSubmitted(c *fiber.Ctx) error {
	report, err := ctrl.loadReport(c)
	if report == nil {
		return err
	}
	if err := ctrl.DB.Model(report).
		Update("daily_report_is_submitted", true).Error; err != nil {
		log.Printf("[ERROR] mark submitted: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark report submitted")
	}
	return helper.JsonUpdated(c, "Report marked as submitted", report)
}

// 🟢 POST /api/reports/:id/notes
func (ctrl *ReportController) SaveManagerNotes(c *fiber.Ctx) error {
	report, err := ctrl.loadReport(c)
	if report == nil {
		return err
	}
	var req dto.ManagerNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.DB.Model(report).
		Update("daily_report_manager_notes", req.ManagerNotes).Error; err != nil {
		log.Printf("[ERROR] save notes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save notes")
	}
	return helper.JsonUpdated(c, "Notes saved", nil)
}

// 🟢 GET /api/reports/:id/export/pdf
func (ctrl *ReportController) ExportPDF(c *fiber.Ctx) error {
	report, err := ctrl.loadReport(c)
	if report == nil {
		return err
	}
	pdfBytes, err := ctrl.PDF.BuildReportPDF(c.Context(), report)
	if err != nil {
		log.Printf("[ERROR] report pdf: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate PDF")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="Report_%s.pdf"`, report.DailyReportDate.Format(helper.DateLayout)))
	return c.Send(pdfBytes)
}

// 🟢 GET /api/reports/export/xlsx[?start_date&end_date] — defaults to the
// last 30 days.
func (ctrl *ReportController) ExportExcel(c *fiber.Ctx) error {
	end := helper.ParseDateOr(c.Query("end_date"), time.Now())
	start := helper.ParseDateOr(c.Query("start_date"), end.AddDate(0, 0, -30))

	data, err := ctrl.Export.BuildTicketWorkbook(c.Context(), start, end)
	if err != nil {
		log.Printf("[ERROR] ticket export: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate export")
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="Tickets_%s_%s.xlsx"`,
			start.Format(helper.DateLayout), end.Format(helper.DateLayout)))
	return c.Send(data)
}

// 🟢 POST /api/reports/weekly-email
func (ctrl *ReportController) SendWeeklyEmail(c *fiber.Ctx) error {
	var req dto.WeeklyReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	start := helper.ParseDateOr(req.StartDate, time.Time{})
	end := helper.ParseDateOr(req.EndDate, time.Time{})
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date range")
	}

	if err := ctrl.Weekly.SendRange(c.Context(), start, end, req.Recipients); err != nil {
		log.Printf("[ERROR] weekly email: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send weekly report")
	}
	return helper.JsonOK(c, "Weekly report sent", nil)
}

func (ctrl *ReportController) getOrCreateReport(c *fiber.Ctx, day time.Time) (*model.DailyReportModel, error) {
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	var report model.DailyReportModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("daily_report_date = ?", date).First(&report).Error
	if err == nil {
		return &report, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	report = model.DailyReportModel{DailyReportDate: date}
	if actor, err := helper.ActorFromLocals(c); err == nil {
		id := actor.ID
		report.DailyReportCreatedByID = &id
		report.DailyReportCreatedByName = actor.Name
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// seedMetrics creates a score-5 cell for every active staff x active criteria
// pair that does not exist yet on this report.
func (ctrl *ReportController) seedMetrics(c *fiber.Ctx, reportID uuid.UUID) error {
	var activeStaff []staffmodel.StaffProfileModel
	if err := ctrl.DB.Where("staff_profile_is_active = ?", true).Find(&activeStaff).Error; err != nil {
		return err
	}
	var activeCriteria []mastermodel.RatingCriteriaModel
	if err := ctrl.DB.Where("rating_criteria_is_active = ?", true).Find(&activeCriteria).Error; err != nil {
		return err
	}

	var existing []model.StaffMetricModel
	if err := ctrl.DB.Where("staff_metric_report_id = ?", reportID).Find(&existing).Error; err != nil {
		return err
	}
	type cell struct{ staff, criteria uuid.UUID }
	have := make(map[cell]bool, len(existing))
	for i := range existing {
		have[cell{existing[i].StaffMetricStaffID, existing[i].StaffMetricCriteriaID}] = true
	}

	var missing []model.StaffMetricModel
	for i := range activeStaff {
		for j := range activeCriteria {
			key := cell{activeStaff[i].StaffProfileID, activeCriteria[j].RatingCriteriaID}
			if have[key] {
				continue
			}
			missing = append(missing, model.StaffMetricModel{
				StaffMetricReportID:   reportID,
				StaffMetricStaffID:    key.staff,
				StaffMetricCriteriaID: key.criteria,
				StaffMetricScore:      5,
			})
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return ctrl.DB.Create(&missing).Error
}

func (ctrl *ReportController) loadReport(c *fiber.Ctx) (*model.DailyReportModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid report id")
	}
	var report model.DailyReportModel
	if err := ctrl.DB.First(&report, "daily_report_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Report not found")
		}
		log.Printf("[ERROR] load report: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch report")
	}
	return &report, nil
}
