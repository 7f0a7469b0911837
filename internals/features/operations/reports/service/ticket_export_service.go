package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"bperformance_backend/internals/features/operations/reports/model"
	helper "bperformance_backend/internals/helpers"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// TicketExportService writes a date range of tickets to an xlsx workbook.
type TicketExportService struct {
	DB *gorm.DB
}

func NewTicketExportService(db *gorm.DB) *TicketExportService {
	return &TicketExportService{DB: db}
}

func (s *TicketExportService) BuildTicketWorkbook(ctx context.Context, from, to time.Time) ([]byte, error) {
	pdfNames, err := (&ReportPDFService{DB: s.DB}).nameIndexes(ctx)
	if err != nil {
		return nil, err
	}

	type ticketRow struct {
		model.TicketEntryModel
		ReportDate time.Time `gorm:"column:daily_report_date"`
	}
	var rows []ticketRow
	if err := s.DB.WithContext(ctx).Model(&model.TicketEntryModel{}).
		Select("ticket_entries.*, daily_reports.daily_report_date").
		Joins("JOIN daily_reports ON daily_reports.daily_report_id = ticket_entries.ticket_entry_report_id").
		Where("daily_reports.daily_report_date BETWEEN ? AND ?", from, to).
		Order("daily_reports.daily_report_date ASC, ticket_entries.ticket_entry_start_time ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Tickets"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Date", "Staff", "Client", "Category", "Work Type", "Status", "Location",
		"Requested", "Start", "End", "Work (min)", "Travel (min)", "Response (min)", "Description",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for r, row := range rows {
		values := []interface{}{
			row.ReportDate.Format(helper.DateLayout),
			pdfNames.staff[row.TicketEntryStaffID],
			pdfNames.clients[row.TicketEntryClientID],
			pdfNames.categories[row.TicketEntryCategoryID],
			string(row.TicketEntryWorkType),
			string(row.TicketEntryStatus),
			string(row.TicketEntryWorkLocation),
			row.TicketEntryRequestedTime,
			row.TicketEntryStartTime,
			row.TicketEntryEndTime,
			row.TicketEntryTotalWorkMinutes,
			row.TicketEntryTravelMinutes,
			row.TicketEntryResponseMinutes,
			row.TicketEntryDescription,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	// Summary footer
	summaryRow := len(rows) + 3
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	f.SetCellValue(sheet, cell, fmt.Sprintf("Total tickets: %d (%s to %s)",
		len(rows), from.Format(helper.DateLayout), to.Format(helper.DateLayout)))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
