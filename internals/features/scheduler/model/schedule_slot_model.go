package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotStatusEnum is the approval lifecycle of a schedule slot.
type SlotStatusEnum string

const (
	SlotPending       SlotStatusEnum = "PENDING"
	SlotApproved      SlotStatusEnum = "APPROVED"
	SlotRejected      SlotStatusEnum = "REJECTED"
	SlotPendingDelete SlotStatusEnum = "PENDING_DELETE"
)

type ScheduleSlotModel struct {
	ScheduleSlotID          uuid.UUID      `gorm:"column:schedule_slot_id;type:uuid;primaryKey" json:"schedule_slot_id"`
	ScheduleSlotStaffID     uuid.UUID      `gorm:"column:schedule_slot_staff_id;type:uuid;not null;index" json:"schedule_slot_staff_id"`
	ScheduleSlotLocation    string         `gorm:"column:schedule_slot_location;type:varchar(100);not null" json:"schedule_slot_location"` // "Office", "Home", or a client name
	ScheduleSlotStartTime   time.Time      `gorm:"column:schedule_slot_start_time;not null;index" json:"schedule_slot_start_time"`
	ScheduleSlotEndTime     time.Time      `gorm:"column:schedule_slot_end_time;not null" json:"schedule_slot_end_time"`
	ScheduleSlotDescription string         `gorm:"column:schedule_slot_description;type:text" json:"schedule_slot_description"`
	ScheduleSlotStatus      SlotStatusEnum `gorm:"column:schedule_slot_status;type:varchar(15);not null;default:'PENDING'" json:"schedule_slot_status"`

	ScheduleSlotCreatedAt time.Time `gorm:"column:schedule_slot_created_at;autoCreateTime" json:"schedule_slot_created_at"`
	ScheduleSlotUpdatedAt time.Time `gorm:"column:schedule_slot_updated_at;autoUpdateTime" json:"schedule_slot_updated_at"`
}

func (ScheduleSlotModel) TableName() string {
	return "schedule_slots"
}

func (m *ScheduleSlotModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScheduleSlotID == uuid.Nil {
		m.ScheduleSlotID = uuid.New()
	}
	return nil
}
