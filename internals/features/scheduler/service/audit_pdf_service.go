package service

import (
	"bytes"
	"context"
	"time"

	staffmodel "bperformance_backend/internals/features/operations/staff/model"
	"bperformance_backend/internals/features/scheduler/model"

	"github.com/jung-kurt/gofpdf"
)

// BuildDayAuditPDF renders one day's change-log entries as a landscape table:
// time, action, staff, approver (or "Pending") and an old->new detail column.
func (s *ApprovalService) BuildDayAuditPDF(ctx context.Context, day time.Time) ([]byte, error) {
	entries, err := s.LogsForDay(ctx, day)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Scheduler Change Log", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Scheduler Change Log")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, "Date: "+day.Format("2006-01-02"))
	pdf.Ln(12)

	headers := []string{"Time", "Action", "Staff Modified", "Approved By", "Details (Old -> New)"}
	widths := []float64{25, 35, 55, 55, 100}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(242, 242, 242)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for i := range entries {
		entry := &entries[i]

		slot := s.slotForEntry(ctx, entry)
		staffName := "N/A"
		if slot != nil {
			staffName = s.staffNameOrID(ctx, slot)
		}

		approver := entry.ScheduleChangeLogApprovedByName
		if approver == "" {
			approver = "Pending"
		}

		row := []string{
			entry.ScheduleChangeLogCreatedAt.Format("15:04"),
			entry.ActionLabel(),
			staffName,
			approver,
			auditDetail(entry, slot),
		}
		for j, cell := range row {
			pdf.CellFormat(widths[j], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(entries) == 0 {
		pdf.Cell(0, 10, "No schedule changes recorded for this day.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func auditDetail(entry *model.ScheduleChangeLogModel, slot *model.ScheduleSlotModel) string {
	switch entry.ScheduleChangeLogAction {
	case model.ChangeActionUpdate:
		if entry.ScheduleChangeLogPreviousStart != nil && slot != nil {
			return "Time: " + entry.ScheduleChangeLogPreviousStart.Format("15:04") +
				" -> " + slot.ScheduleSlotStartTime.Format("15:04")
		}
	case model.ChangeActionCreate:
		if slot != nil {
			return "Created: " + slot.ScheduleSlotStartTime.Format("15:04") +
				" - " + slot.ScheduleSlotEndTime.Format("15:04")
		}
	case model.ChangeActionDelete:
		return "Slot Deleted"
	}
	return ""
}

func (s *ApprovalService) slotForEntry(ctx context.Context, entry *model.ScheduleChangeLogModel) *model.ScheduleSlotModel {
	if entry.ScheduleChangeLogSlotID == nil {
		return nil
	}
	var slot model.ScheduleSlotModel
	if err := s.DB.WithContext(ctx).First(&slot, "schedule_slot_id = ?", *entry.ScheduleChangeLogSlotID).Error; err != nil {
		return nil
	}
	return &slot
}

func (s *ApprovalService) staffNameOrID(ctx context.Context, slot *model.ScheduleSlotModel) string {
	var staff staffmodel.StaffProfileModel
	if err := s.DB.WithContext(ctx).First(&staff, "staff_profile_id = ?", slot.ScheduleSlotStaffID).Error; err != nil {
		return slot.ScheduleSlotStaffID.String()
	}
	return staff.StaffProfileFullName
}
