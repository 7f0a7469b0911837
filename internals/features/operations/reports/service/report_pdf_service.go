package service

import (
	"bytes"
	"context"
	"fmt"

	mastermodel "bperformance_backend/internals/features/operations/masterdata/model"
	staffmodel "bperformance_backend/internals/features/operations/staff/model"
	"bperformance_backend/internals/features/operations/reports/model"
	helper "bperformance_backend/internals/helpers"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

// ReportPDFService renders a daily report: the ticket table followed by the
// per-staff metric scores.
type ReportPDFService struct {
	DB *gorm.DB
}

func NewReportPDFService(db *gorm.DB) *ReportPDFService {
	return &ReportPDFService{DB: db}
}

func (s *ReportPDFService) BuildReportPDF(ctx context.Context, report *model.DailyReportModel) ([]byte, error) {
	var buf bytes.Buffer
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Daily Operations Report", false)
	pdf.AddPage()
	if err := s.renderReport(ctx, pdf, report); err != nil {
		return nil, err
	}
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderReport writes one report onto the current page; the weekly export
// reuses it with one page per day.
func (s *ReportPDFService) renderReport(ctx context.Context, pdf *gofpdf.Fpdf, report *model.DailyReportModel) error {
	names, err := s.nameIndexes(ctx)
	if err != nil {
		return err
	}

	var tickets []model.TicketEntryModel
	if err := s.DB.WithContext(ctx).
		Where("ticket_entry_report_id = ?", report.DailyReportID).
		Order("ticket_entry_start_time ASC").
		Find(&tickets).Error; err != nil {
		return err
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Daily Operations Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, "Date: "+report.DailyReportDate.Format(helper.DateLayout))
	pdf.Ln(10)

	headers := []string{"Staff", "Client", "Category", "Type", "Status", "Start", "End", "Work", "Description"}
	widths := []float64{35, 35, 30, 12, 18, 14, 14, 16, 96}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(242, 242, 242)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for i := range tickets {
		t := &tickets[i]
		desc := t.TicketEntryDescription
		if len(desc) > 70 {
			desc = desc[:67] + "..."
		}
		row := []string{
			names.staff[t.TicketEntryStaffID],
			names.clients[t.TicketEntryClientID],
			names.categories[t.TicketEntryCategoryID],
			string(t.TicketEntryWorkType),
			string(t.TicketEntryStatus),
			t.TicketEntryStartTime,
			t.TicketEntryEndTime,
			helper.FormatMinutes(t.TicketEntryTotalWorkMinutes),
			desc,
		}
		for j, cell := range row {
			pdf.CellFormat(widths[j], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(tickets) == 0 {
		pdf.Cell(0, 8, "No tickets recorded.")
		pdf.Ln(10)
	} else {
		pdf.Ln(4)
	}

	var metrics []model.StaffMetricModel
	if err := s.DB.WithContext(ctx).
		Where("staff_metric_report_id = ?", report.DailyReportID).
		Order("staff_metric_staff_id, staff_metric_criteria_id").
		Find(&metrics).Error; err != nil {
		return err
	}
	if len(metrics) > 0 {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 8, "Staff Ratings")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 9)
		for i := range metrics {
			m := &metrics[i]
			line := fmt.Sprintf("%s - %s: %d/10",
				names.staff[m.StaffMetricStaffID],
				names.criteria[m.StaffMetricCriteriaID],
				m.StaffMetricScore)
			if m.StaffMetricNotes != "" {
				line += "  (" + m.StaffMetricNotes + ")"
			}
			pdf.Cell(0, 5, line)
			pdf.Ln(5)
		}
	}

	if report.DailyReportManagerNotes != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 8, "Manager Notes")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, report.DailyReportManagerNotes, "", "L", false)
	}
	return nil
}

type nameIndex struct {
	staff      map[uuid.UUID]string
	clients    map[uuid.UUID]string
	categories map[uuid.UUID]string
	criteria   map[uuid.UUID]string
}

func (s *ReportPDFService) nameIndexes(ctx context.Context) (*nameIndex, error) {
	idx := &nameIndex{
		staff:      map[uuid.UUID]string{},
		clients:    map[uuid.UUID]string{},
		categories: map[uuid.UUID]string{},
		criteria:   map[uuid.UUID]string{},
	}

	var staff []staffmodel.StaffProfileModel
	if err := s.DB.WithContext(ctx).Find(&staff).Error; err != nil {
		return nil, err
	}
	for i := range staff {
		idx.staff[staff[i].StaffProfileID] = staff[i].StaffProfileFullName
	}

	var clients []mastermodel.ClientModel
	if err := s.DB.WithContext(ctx).Find(&clients).Error; err != nil {
		return nil, err
	}
	for i := range clients {
		idx.clients[clients[i].ClientID] = clients[i].ClientName
	}

	var categories []mastermodel.CategoryModel
	if err := s.DB.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	for i := range categories {
		idx.categories[categories[i].CategoryID] = categories[i].CategoryName
	}

	var criteria []mastermodel.RatingCriteriaModel
	if err := s.DB.WithContext(ctx).Find(&criteria).Error; err != nil {
		return nil, err
	}
	for i := range criteria {
		idx.criteria[criteria[i].RatingCriteriaID] = criteria[i].RatingCriteriaName
	}

	return idx, nil
}
