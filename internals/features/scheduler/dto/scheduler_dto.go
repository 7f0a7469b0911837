package dto

import (
	"time"

	"bperformance_backend/internals/features/scheduler/model"

	"github.com/google/uuid"
)

/* ================================ REQUEST ================================ */

// Times travel over the wire as "2006-01-02T15:04" strings, parsed by the
// controller before the service sees them.

type CreateSlotRequest struct {
	StaffID     string `json:"staff_id" validate:"required,uuid"`
	Location    string `json:"location" validate:"required,max=100"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
}

type MoveSlotRequest struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type ResolveRequest struct {
	Action   string `json:"action" validate:"required,oneof=approve reject"`
	Comments string `json:"comments" validate:"omitempty"`
}

/* =============================== RESPONSE ================================ */

type ScheduleSlotResponse struct {
	ScheduleSlotID uuid.UUID            `json:"schedule_slot_id"`
	StaffID        uuid.UUID            `json:"staff_id"`
	StaffName      string               `json:"staff_name,omitempty"`
	Location       string               `json:"location"`
	StartTime      time.Time            `json:"start_time"`
	EndTime        time.Time            `json:"end_time"`
	Description    string               `json:"description"`
	Status         model.SlotStatusEnum `json:"status"`
}

type ChangeLogResponse struct {
	ScheduleChangeLogID uuid.UUID              `json:"schedule_change_log_id"`
	SlotID              *uuid.UUID             `json:"slot_id,omitempty"`
	Action              model.ChangeActionEnum `json:"action"`
	ActionLabel         string                 `json:"action_label"`
	RequestedByName     string                 `json:"requested_by_name"`
	ApprovedByName      string                 `json:"approved_by_name"` // empty while pending
	Comments            string                 `json:"comments"`
	PreviousStart       *time.Time             `json:"previous_start,omitempty"`
	PreviousEnd         *time.Time             `json:"previous_end,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
}

func ToScheduleSlotResponse(m *model.ScheduleSlotModel, staffName string) ScheduleSlotResponse {
	return ScheduleSlotResponse{
		ScheduleSlotID: m.ScheduleSlotID,
		StaffID:        m.ScheduleSlotStaffID,
		StaffName:      staffName,
		Location:       m.ScheduleSlotLocation,
		StartTime:      m.ScheduleSlotStartTime,
		EndTime:        m.ScheduleSlotEndTime,
		Description:    m.ScheduleSlotDescription,
		Status:         m.ScheduleSlotStatus,
	}
}

func ToChangeLogResponse(m *model.ScheduleChangeLogModel) ChangeLogResponse {
	return ChangeLogResponse{
		ScheduleChangeLogID: m.ScheduleChangeLogID,
		SlotID:              m.ScheduleChangeLogSlotID,
		Action:              m.ScheduleChangeLogAction,
		ActionLabel:         m.ActionLabel(),
		RequestedByName:     m.ScheduleChangeLogRequestedByName,
		ApprovedByName:      m.ScheduleChangeLogApprovedByName,
		Comments:            m.ScheduleChangeLogComments,
		PreviousStart:       m.ScheduleChangeLogPreviousStart,
		PreviousEnd:         m.ScheduleChangeLogPreviousEnd,
		CreatedAt:           m.ScheduleChangeLogCreatedAt,
	}
}
