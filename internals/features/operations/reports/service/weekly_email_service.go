package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"bperformance_backend/internals/features/operations/reports/model"
	helper "bperformance_backend/internals/helpers"
	"bperformance_backend/internals/notifier"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

// WeeklyEmailService mails a combined PDF of every daily report in a range,
// one page per day.
type WeeklyEmailService struct {
	DB     *gorm.DB
	PDF    *ReportPDFService
	Mailer notifier.Mailer
}

func NewWeeklyEmailService(db *gorm.DB, pdf *ReportPDFService, mailer notifier.Mailer) *WeeklyEmailService {
	return &WeeklyEmailService{DB: db, PDF: pdf, Mailer: mailer}
}

func (s *WeeklyEmailService) SendRange(ctx context.Context, start, end time.Time, recipients []string) error {
	var reports []model.DailyReportModel
	if err := s.DB.WithContext(ctx).
		Where("daily_report_date BETWEEN ? AND ?", start, end).
		Order("daily_report_date ASC").
		Find(&reports).Error; err != nil {
		return err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Weekly Operations Report", false)
	if len(reports) == 0 {
		pdf.AddPage()
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 10, "No reports recorded in this period.")
	}
	for i := range reports {
		pdf.AddPage()
		if err := s.PDF.renderReport(ctx, pdf, &reports[i]); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return err
	}

	startStr := start.Format(helper.DateLayout)
	endStr := end.Format(helper.DateLayout)
	subject := fmt.Sprintf("Weekly Operations Report: %s to %s", startStr, endStr)
	body := fmt.Sprintf(
		"<p>Please find attached the combined operations report for the period %s to %s.</p><p>Generated by BPerformance.</p>",
		startStr, endStr)

	return s.Mailer.Send(recipients, subject, body, notifier.Attachment{
		Filename: fmt.Sprintf("Weekly_Report_%s_%s.pdf", startStr, endStr),
		Content:  buf.Bytes(),
		MIMEType: "application/pdf",
	})
}
