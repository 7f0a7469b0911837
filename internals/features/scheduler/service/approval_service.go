package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	staffmodel "bperformance_backend/internals/features/operations/staff/model"
	"bperformance_backend/internals/features/scheduler/model"
	"bperformance_backend/internals/helpers"
	"bperformance_backend/internals/notifier"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrAlreadyResolved = errors.New("change log already resolved")
	ErrValidation      = errors.New("validation failed")
)

// Decision is an approver's verdict on a pending change.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// ApprovalService owns the slot approval lifecycle. Every propose applies the
// change optimistically (times written immediately, deletion soft via
// PENDING_DELETE) and records an unresolved change-log entry; Resolve then
// confirms or reverts. Slot status is never mutated outside this service.
type ApprovalService struct {
	DB            *gorm.DB
	Mailer        notifier.Mailer
	LinkBase      string // e.g. http://localhost:3000
	ApproverEmail string
}

func NewApprovalService(db *gorm.DB, mailer notifier.Mailer, linkBase, approverEmail string) *ApprovalService {
	return &ApprovalService{DB: db, Mailer: mailer, LinkBase: linkBase, ApproverEmail: approverEmail}
}

type ProposeCreateInput struct {
	StaffID     uuid.UUID
	Location    string
	Start       time.Time
	End         time.Time
	Description string
}

// ProposeCreate stages a new slot as PENDING and notifies the approver.
func (s *ApprovalService) ProposeCreate(ctx context.Context, in ProposeCreateInput, requester helper.Actor) (*model.ScheduleSlotModel, *model.ScheduleChangeLogModel, error) {
	if !in.Start.Before(in.End) {
		return nil, nil, fmt.Errorf("%w: start time must be before end time", ErrValidation)
	}

	var staff staffmodel.StaffProfileModel
	if err := s.DB.WithContext(ctx).First(&staff, "staff_profile_id = ?", in.StaffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: staff %s", ErrNotFound, in.StaffID)
		}
		return nil, nil, err
	}

	slot := model.ScheduleSlotModel{
		ScheduleSlotStaffID:     in.StaffID,
		ScheduleSlotLocation:    in.Location,
		ScheduleSlotStartTime:   in.Start,
		ScheduleSlotEndTime:     in.End,
		ScheduleSlotDescription: in.Description,
		ScheduleSlotStatus:      model.SlotPending,
	}
	entry := model.ScheduleChangeLogModel{
		ScheduleChangeLogAction:          model.ChangeActionCreate,
		ScheduleChangeLogRequestedByID:   actorIDPtr(requester),
		ScheduleChangeLogRequestedByName: requester.Name,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&slot).Error; err != nil {
			return err
		}
		entry.ScheduleChangeLogSlotID = &slot.ScheduleSlotID
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, nil, err
	}

	s.sendApprovalMail(&entry, &slot, staff.StaffProfileFullName)
	return &slot, &entry, nil
}

// ProposeMove overwrites the slot's times immediately, forces the status back
// to PENDING and snapshots the old times into the log so a rejection can
// restore them.
func (s *ApprovalService) ProposeMove(ctx context.Context, slotID uuid.UUID, newStart, newEnd time.Time, requester helper.Actor) (*model.ScheduleSlotModel, *model.ScheduleChangeLogModel, error) {
	if !newStart.Before(newEnd) {
		return nil, nil, fmt.Errorf("%w: start time must be before end time", ErrValidation)
	}

	var slot model.ScheduleSlotModel
	if err := s.DB.WithContext(ctx).First(&slot, "schedule_slot_id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: slot %s", ErrNotFound, slotID)
		}
		return nil, nil, err
	}

	prevStart := slot.ScheduleSlotStartTime
	prevEnd := slot.ScheduleSlotEndTime

	entry := model.ScheduleChangeLogModel{
		ScheduleChangeLogSlotID:          &slot.ScheduleSlotID,
		ScheduleChangeLogAction:          model.ChangeActionUpdate,
		ScheduleChangeLogRequestedByID:   actorIDPtr(requester),
		ScheduleChangeLogRequestedByName: requester.Name,
		ScheduleChangeLogPreviousStart:   &prevStart,
		ScheduleChangeLogPreviousEnd:     &prevEnd,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.ScheduleSlotModel{}).
			Where("schedule_slot_id = ?", slot.ScheduleSlotID).
			Updates(map[string]interface{}{
				"schedule_slot_start_time": newStart,
				"schedule_slot_end_time":   newEnd,
				"schedule_slot_status":     model.SlotPending,
			})
		if res.Error != nil {
			return res.Error
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, nil, err
	}

	slot.ScheduleSlotStartTime = newStart
	slot.ScheduleSlotEndTime = newEnd
	slot.ScheduleSlotStatus = model.SlotPending

	s.sendApprovalMail(&entry, &slot, s.staffName(ctx, slot.ScheduleSlotStaffID))
	return &slot, &entry, nil
}

// ProposeDelete marks the slot PENDING_DELETE. The row stays until an approver
// confirms the deletion.
func (s *ApprovalService) ProposeDelete(ctx context.Context, slotID uuid.UUID, requester helper.Actor) (*model.ScheduleSlotModel, *model.ScheduleChangeLogModel, error) {
	var slot model.ScheduleSlotModel
	if err := s.DB.WithContext(ctx).First(&slot, "schedule_slot_id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: slot %s", ErrNotFound, slotID)
		}
		return nil, nil, err
	}

	entry := model.ScheduleChangeLogModel{
		ScheduleChangeLogSlotID:          &slot.ScheduleSlotID,
		ScheduleChangeLogAction:          model.ChangeActionDelete,
		ScheduleChangeLogRequestedByID:   actorIDPtr(requester),
		ScheduleChangeLogRequestedByName: requester.Name,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ScheduleSlotModel{}).
			Where("schedule_slot_id = ?", slot.ScheduleSlotID).
			Update("schedule_slot_status", model.SlotPendingDelete).Error; err != nil {
			return err
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, nil, err
	}

	slot.ScheduleSlotStatus = model.SlotPendingDelete
	s.sendApprovalMail(&entry, &slot, s.staffName(ctx, slot.ScheduleSlotStaffID))
	return &slot, &entry, nil
}

// Resolve records the approver's decision on a change-log entry and applies
// the matching slot mutation. The approver fields are written with a
// compare-and-set on "not yet resolved", so a second resolution of the same
// entry fails with ErrAlreadyResolved instead of re-running the mutation.
// If the slot reference is already gone the decision is still recorded.
func (s *ApprovalService) Resolve(ctx context.Context, logID uuid.UUID, decision Decision, approver helper.Actor, comments string) (*model.ScheduleChangeLogModel, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return nil, fmt.Errorf("%w: unknown decision %q", ErrValidation, decision)
	}

	var entry model.ScheduleChangeLogModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entry, "schedule_change_log_id = ?", logID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: change log %s", ErrNotFound, logID)
			}
			return err
		}

		res := tx.Model(&model.ScheduleChangeLogModel{}).
			Where("schedule_change_log_id = ? AND schedule_change_log_approved_by_id IS NULL", entry.ScheduleChangeLogID).
			Updates(map[string]interface{}{
				"schedule_change_log_approved_by_id":   approver.ID,
				"schedule_change_log_approved_by_name": approver.Name,
				"schedule_change_log_comments":         comments,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyResolved
		}

		approverID := approver.ID
		entry.ScheduleChangeLogApprovedByID = &approverID
		entry.ScheduleChangeLogApprovedByName = approver.Name
		entry.ScheduleChangeLogComments = comments

		if entry.ScheduleChangeLogSlotID == nil {
			return nil
		}

		var slot model.ScheduleSlotModel
		if err := tx.First(&slot, "schedule_slot_id = ?", *entry.ScheduleChangeLogSlotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Slot already hard-deleted; the decision is recorded anyway.
				return nil
			}
			return err
		}

		return s.applyDecision(tx, &entry, &slot, decision)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// applyDecision is the exhaustive (decision x action) dispatch table.
func (s *ApprovalService) applyDecision(tx *gorm.DB, entry *model.ScheduleChangeLogModel, slot *model.ScheduleSlotModel, decision Decision) error {
	switch {
	case decision == DecisionApprove && entry.ScheduleChangeLogAction == model.ChangeActionCreate,
		decision == DecisionApprove && entry.ScheduleChangeLogAction == model.ChangeActionUpdate:
		// New times were already applied at propose time; approval confirms.
		return s.setSlotStatus(tx, slot.ScheduleSlotID, model.SlotApproved)

	case decision == DecisionApprove && entry.ScheduleChangeLogAction == model.ChangeActionDelete:
		// Null out every log reference first so history survives the delete.
		if err := tx.Model(&model.ScheduleChangeLogModel{}).
			Where("schedule_change_log_slot_id = ?", slot.ScheduleSlotID).
			Update("schedule_change_log_slot_id", nil).Error; err != nil {
			return err
		}
		entry.ScheduleChangeLogSlotID = nil
		return tx.Delete(&model.ScheduleSlotModel{}, "schedule_slot_id = ?", slot.ScheduleSlotID).Error

	case decision == DecisionReject && entry.ScheduleChangeLogAction == model.ChangeActionCreate:
		return s.setSlotStatus(tx, slot.ScheduleSlotID, model.SlotRejected)

	case decision == DecisionReject && entry.ScheduleChangeLogAction == model.ChangeActionUpdate:
		// Restore the snapshot and land on APPROVED, the last known good
		// state, never back on PENDING.
		updates := map[string]interface{}{
			"schedule_slot_status": model.SlotApproved,
		}
		if entry.ScheduleChangeLogPreviousStart != nil && entry.ScheduleChangeLogPreviousEnd != nil {
			updates["schedule_slot_start_time"] = *entry.ScheduleChangeLogPreviousStart
			updates["schedule_slot_end_time"] = *entry.ScheduleChangeLogPreviousEnd
		}
		return tx.Model(&model.ScheduleSlotModel{}).
			Where("schedule_slot_id = ?", slot.ScheduleSlotID).
			Updates(updates).Error

	case decision == DecisionReject && entry.ScheduleChangeLogAction == model.ChangeActionDelete:
		// Deletion cancelled; slot returns to active service.
		return s.setSlotStatus(tx, slot.ScheduleSlotID, model.SlotApproved)
	}
	return fmt.Errorf("%w: unhandled action %q", ErrValidation, entry.ScheduleChangeLogAction)
}

func (s *ApprovalService) setSlotStatus(tx *gorm.DB, slotID uuid.UUID, status model.SlotStatusEnum) error {
	return tx.Model(&model.ScheduleSlotModel{}).
		Where("schedule_slot_id = ?", slotID).
		Update("schedule_slot_status", status).Error
}

/* ================================ QUERIES ================================ */

func (s *ApprovalService) SlotByID(ctx context.Context, slotID uuid.UUID) (*model.ScheduleSlotModel, error) {
	var slot model.ScheduleSlotModel
	if err := s.DB.WithContext(ctx).First(&slot, "schedule_slot_id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: slot %s", ErrNotFound, slotID)
		}
		return nil, err
	}
	return &slot, nil
}

// SlotsForRange returns slots whose start time falls inside [from, to).
func (s *ApprovalService) SlotsForRange(ctx context.Context, from, to time.Time) ([]model.ScheduleSlotModel, error) {
	var slots []model.ScheduleSlotModel
	err := s.DB.WithContext(ctx).
		Where("schedule_slot_start_time >= ? AND schedule_slot_start_time < ?", from, to).
		Order("schedule_slot_start_time ASC").
		Find(&slots).Error
	return slots, err
}

// History returns the full audit trail, newest first.
func (s *ApprovalService) History(ctx context.Context) ([]model.ScheduleChangeLogModel, error) {
	var entries []model.ScheduleChangeLogModel
	err := s.DB.WithContext(ctx).
		Order("schedule_change_log_created_at DESC").
		Find(&entries).Error
	return entries, err
}

// LogsForDay returns a single day's entries in chronological order, the shape
// the audit PDF consumes.
func (s *ApprovalService) LogsForDay(ctx context.Context, day time.Time) ([]model.ScheduleChangeLogModel, error) {
	from, to := helper.DayBounds(day)
	var entries []model.ScheduleChangeLogModel
	err := s.DB.WithContext(ctx).
		Where("schedule_change_log_created_at >= ? AND schedule_change_log_created_at < ?", from, to).
		Order("schedule_change_log_created_at ASC").
		Find(&entries).Error
	return entries, err
}

// ChangesCountForDay backs the dashboard "changes today" badge.
func (s *ApprovalService) ChangesCountForDay(ctx context.Context, day time.Time) (int64, error) {
	from, to := helper.DayBounds(day)
	var count int64
	err := s.DB.WithContext(ctx).Model(&model.ScheduleChangeLogModel{}).
		Where("schedule_change_log_created_at >= ? AND schedule_change_log_created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

func (s *ApprovalService) LogByID(ctx context.Context, logID uuid.UUID) (*model.ScheduleChangeLogModel, error) {
	var entry model.ScheduleChangeLogModel
	if err := s.DB.WithContext(ctx).First(&entry, "schedule_change_log_id = ?", logID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: change log %s", ErrNotFound, logID)
		}
		return nil, err
	}
	return &entry, nil
}

/* ============================= NOTIFICATION ============================== */

// sendApprovalMail is fire-and-forget. Delivery failure is logged and never
// rolls back the already-committed slot/log mutation.
func (s *ApprovalService) sendApprovalMail(entry *model.ScheduleChangeLogModel, slot *model.ScheduleSlotModel, staffName string) {
	if s.Mailer == nil || s.ApproverEmail == "" {
		return
	}

	approveLink := fmt.Sprintf("%s/api/scheduler/approval/%s/approve", s.LinkBase, entry.ScheduleChangeLogID)
	rejectLink := fmt.Sprintf("%s/api/scheduler/approval/%s/reject", s.LinkBase, entry.ScheduleChangeLogID)

	body := fmt.Sprintf(`
		<h3>Schedule Change Request</h3>
		<p><b>%s</b> requested: <b>%s</b></p>
		<p>Staff: %s<br>Location: %s<br>Time: %s &ndash; %s</p>
		<p>
			<a href="%s">Approve</a> &nbsp;|&nbsp; <a href="%s">Reject</a>
		</p>`,
		entry.ScheduleChangeLogRequestedByName,
		entry.ActionLabel(),
		staffName,
		slot.ScheduleSlotLocation,
		slot.ScheduleSlotStartTime.Format("02 Jan 2006 15:04"),
		slot.ScheduleSlotEndTime.Format("02 Jan 2006 15:04"),
		approveLink, rejectLink,
	)

	subject := fmt.Sprintf("Schedule Approval Required: %s", entry.ActionLabel())
	if err := s.Mailer.Send([]string{s.ApproverEmail}, subject, body); err != nil {
		log.Printf("[WARN] approval email not sent for log %s: %v", entry.ScheduleChangeLogID, err)
	}
}

func (s *ApprovalService) staffName(ctx context.Context, staffID uuid.UUID) string {
	var staff staffmodel.StaffProfileModel
	if err := s.DB.WithContext(ctx).First(&staff, "staff_profile_id = ?", staffID).Error; err != nil {
		return ""
	}
	return staff.StaffProfileFullName
}

func actorIDPtr(a helper.Actor) *uuid.UUID {
	if a.ID == uuid.Nil {
		return nil
	}
	id := a.ID
	return &id
}
