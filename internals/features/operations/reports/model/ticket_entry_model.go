package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkTypeEnum mirrors the ticket work-type dropdown.
type WorkTypeEnum string

const (
	WorkTypeInternal WorkTypeEnum = "INT" // Internal (Office)
	WorkTypeExternal WorkTypeEnum = "EXT" // External (On-Site)
	WorkTypeRemote   WorkTypeEnum = "REM" // Remote Support
	WorkTypeAdmin    WorkTypeEnum = "ADM" // Admin / Workshop
)

// TicketStatusEnum mirrors the ticket status dropdown.
type TicketStatusEnum string

const (
	TicketCompleted      TicketStatusEnum = "COMP"
	TicketBlocker        TicketStatusEnum = "BLOCK"
	TicketPending        TicketStatusEnum = "PEND"
	TicketOnHold         TicketStatusEnum = "HOLD"
	TicketCallBack       TicketStatusEnum = "CALL"
	TicketAwaitingStaff  TicketStatusEnum = "WAIT_ST"
	TicketAwaitingClient TicketStatusEnum = "WAIT_CL"
)

// WorkLocationEnum mirrors the ticket work-location dropdown.
type WorkLocationEnum string

const (
	LocationOffice WorkLocationEnum = "OFFICE"
	LocationHome   WorkLocationEnum = "HOME"
	LocationHybrid WorkLocationEnum = "HYBRID"
)

type TicketEntryModel struct {
	TicketEntryID         uuid.UUID `gorm:"column:ticket_entry_id;type:uuid;primaryKey" json:"ticket_entry_id"`
	TicketEntryReportID   uuid.UUID `gorm:"column:ticket_entry_report_id;type:uuid;not null;index" json:"ticket_entry_report_id"`
	TicketEntryStaffID    uuid.UUID `gorm:"column:ticket_entry_staff_id;type:uuid;not null;index" json:"ticket_entry_staff_id"`
	TicketEntryClientID   uuid.UUID `gorm:"column:ticket_entry_client_id;type:uuid;not null" json:"ticket_entry_client_id"`
	TicketEntryCategoryID uuid.UUID `gorm:"column:ticket_entry_category_id;type:uuid;not null" json:"ticket_entry_category_id"`

	TicketEntryWorkType     WorkTypeEnum     `gorm:"column:ticket_entry_work_type;type:varchar(3);not null;default:'INT'" json:"ticket_entry_work_type"`
	TicketEntryStatus       TicketStatusEnum `gorm:"column:ticket_entry_status;type:varchar(7);not null;default:'COMP'" json:"ticket_entry_status"`
	TicketEntryWorkLocation WorkLocationEnum `gorm:"column:ticket_entry_work_location;type:varchar(10);not null;default:'OFFICE'" json:"ticket_entry_work_location"`

	// clock strings "HH:MM"
	TicketEntryRequestedTime   string  `gorm:"column:ticket_entry_requested_time;type:varchar(5);not null" json:"ticket_entry_requested_time"`
	TicketEntryStartTime       string  `gorm:"column:ticket_entry_start_time;type:varchar(5);not null" json:"ticket_entry_start_time"`
	TicketEntryEndTime         string  `gorm:"column:ticket_entry_end_time;type:varchar(5);not null" json:"ticket_entry_end_time"`
	TicketEntryTravelStartTime *string `gorm:"column:ticket_entry_travel_start_time;type:varchar(5)" json:"ticket_entry_travel_start_time,omitempty"`
	TicketEntryTravelEndTime   *string `gorm:"column:ticket_entry_travel_end_time;type:varchar(5)" json:"ticket_entry_travel_end_time,omitempty"`

	TicketEntryDescription  string `gorm:"column:ticket_entry_description;type:text;not null" json:"ticket_entry_description"`
	TicketEntryManagerNotes string `gorm:"column:ticket_entry_manager_notes;type:text" json:"ticket_entry_manager_notes"`

	// stored for analytics
	TicketEntryTotalWorkMinutes int `gorm:"column:ticket_entry_total_work_minutes;not null;default:0" json:"ticket_entry_total_work_minutes"`
	TicketEntryTravelMinutes    int `gorm:"column:ticket_entry_travel_minutes;not null;default:0" json:"ticket_entry_travel_minutes"`
	TicketEntryResponseMinutes  int `gorm:"column:ticket_entry_response_minutes;not null;default:0" json:"ticket_entry_response_minutes"` // start - requested

	TicketEntryCreatedAt time.Time `gorm:"column:ticket_entry_created_at;autoCreateTime" json:"ticket_entry_created_at"`
	TicketEntryUpdatedAt time.Time `gorm:"column:ticket_entry_updated_at;autoUpdateTime" json:"ticket_entry_updated_at"`
}

func (TicketEntryModel) TableName() string {
	return "ticket_entries"
}

type TicketAttachmentModel struct {
	TicketAttachmentID         uuid.UUID `gorm:"column:ticket_attachment_id;type:uuid;primaryKey" json:"ticket_attachment_id"`
	TicketAttachmentTicketID   uuid.UUID `gorm:"column:ticket_attachment_ticket_id;type:uuid;not null;index" json:"ticket_attachment_ticket_id"`
	TicketAttachmentFilePath   string    `gorm:"column:ticket_attachment_file_path;type:varchar(255);not null" json:"ticket_attachment_file_path"`
	TicketAttachmentUploadedAt time.Time `gorm:"column:ticket_attachment_uploaded_at;autoCreateTime" json:"ticket_attachment_uploaded_at"`
}

func (TicketAttachmentModel) TableName() string {
	return "ticket_attachments"
}

func (m *TicketEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.TicketEntryID == uuid.Nil {
		m.TicketEntryID = uuid.New()
	}
	return nil
}

func (m *TicketAttachmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.TicketAttachmentID == uuid.Nil {
		m.TicketAttachmentID = uuid.New()
	}
	return nil
}
