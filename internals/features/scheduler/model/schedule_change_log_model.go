package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChangeActionEnum labels what a change-log entry proposed.
type ChangeActionEnum string

const (
	ChangeActionCreate ChangeActionEnum = "CREATE"
	ChangeActionUpdate ChangeActionEnum = "UPDATE"
	ChangeActionDelete ChangeActionEnum = "DELETE"
)

// ScheduleChangeLogModel is append-only audit history. The slot reference is
// nullable so entries survive a hard slot deletion.
type ScheduleChangeLogModel struct {
	ScheduleChangeLogID     uuid.UUID        `gorm:"column:schedule_change_log_id;type:uuid;primaryKey" json:"schedule_change_log_id"`
	ScheduleChangeLogSlotID *uuid.UUID       `gorm:"column:schedule_change_log_slot_id;type:uuid;index" json:"schedule_change_log_slot_id,omitempty"`
	ScheduleChangeLogAction ChangeActionEnum `gorm:"column:schedule_change_log_action;type:varchar(10);not null" json:"schedule_change_log_action"`

	ScheduleChangeLogRequestedByID   *uuid.UUID `gorm:"column:schedule_change_log_requested_by_id;type:uuid" json:"schedule_change_log_requested_by_id,omitempty"`
	ScheduleChangeLogRequestedByName string     `gorm:"column:schedule_change_log_requested_by_name;type:varchar(100)" json:"schedule_change_log_requested_by_name"`
	ScheduleChangeLogApprovedByID    *uuid.UUID `gorm:"column:schedule_change_log_approved_by_id;type:uuid" json:"schedule_change_log_approved_by_id,omitempty"`
	ScheduleChangeLogApprovedByName  string     `gorm:"column:schedule_change_log_approved_by_name;type:varchar(100)" json:"schedule_change_log_approved_by_name"`

	ScheduleChangeLogComments string `gorm:"column:schedule_change_log_comments;type:text" json:"schedule_change_log_comments"`

	// Snapshot of the pre-mutation times, populated only for UPDATE so a
	// rejection can restore the last approved state.
	ScheduleChangeLogPreviousStart *time.Time `gorm:"column:schedule_change_log_previous_start" json:"schedule_change_log_previous_start,omitempty"`
	ScheduleChangeLogPreviousEnd   *time.Time `gorm:"column:schedule_change_log_previous_end" json:"schedule_change_log_previous_end,omitempty"`

	ScheduleChangeLogCreatedAt time.Time `gorm:"column:schedule_change_log_created_at;autoCreateTime;index" json:"schedule_change_log_created_at"`
}

func (ScheduleChangeLogModel) TableName() string {
	return "schedule_change_logs"
}

func (m *ScheduleChangeLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScheduleChangeLogID == uuid.Nil {
		m.ScheduleChangeLogID = uuid.New()
	}
	return nil
}

// IsResolved reports whether an approver decision has been recorded.
func (m *ScheduleChangeLogModel) IsResolved() bool {
	return m.ScheduleChangeLogApprovedByID != nil
}

// ActionLabel is the display wording used in emails and audit exports.
func (m *ScheduleChangeLogModel) ActionLabel() string {
	switch m.ScheduleChangeLogAction {
	case ChangeActionCreate:
		return "Created Slot"
	case ChangeActionUpdate:
		return "Updated Slot"
	case ChangeActionDelete:
		return "Deleted Slot"
	default:
		return string(m.ScheduleChangeLogAction)
	}
}
