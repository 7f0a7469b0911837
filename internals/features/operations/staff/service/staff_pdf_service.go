package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"bperformance_backend/internals/features/operations/staff/model"
	helper "bperformance_backend/internals/helpers"

	"github.com/jung-kurt/gofpdf"
)

// BuildStaffPDF renders a staff performance report for the given window:
// headline stats, average score per rating criteria and the ticket list.
func (s *StaffStatsService) BuildStaffPDF(ctx context.Context, staff *model.StaffProfileModel, from, to time.Time) ([]byte, error) {
	stats, err := s.StatsForRange(ctx, staff.StaffProfileID, from, to)
	if err != nil {
		return nil, err
	}
	tickets, err := s.TicketsForRange(ctx, staff.StaffProfileID, from, to)
	if err != nil {
		return nil, err
	}
	clientNames, err := s.ClientNameIndex(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Staff Performance Report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Staff Performance Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, staff.StaffProfileFullName)
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s to %s", stats.StartDate, stats.EndDate))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, "Summary")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	summary := [][2]string{
		{"Total Tickets", fmt.Sprintf("%d", stats.TotalTickets)},
		{"Unique Clients", fmt.Sprintf("%d", stats.UniqueClients)},
		{"Avg Resolution", stats.AvgResolution},
		{"Avg Response", stats.AvgResponse},
	}
	for _, row := range summary {
		pdf.CellFormat(60, 6, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, row[1], "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	if len(stats.CriteriaAverages) > 0 {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, "Performance Ratings (1-10)")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		for _, ca := range stats.CriteriaAverages {
			pdf.CellFormat(60, 6, ca.Criteria, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("%.1f", ca.AvgScore), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, "Tickets")
	pdf.Ln(7)

	headers := []string{"Client", "Status", "Start", "End", "Work", "Description"}
	widths := []float64{40, 20, 15, 15, 18, 82}
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
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		row := []string{
			clientNames[t.TicketEntryClientID],
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
		pdf.Cell(0, 8, "No tickets recorded in this period.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
