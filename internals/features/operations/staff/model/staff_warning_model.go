package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WarningSeverityEnum is the HR warning ladder.
type WarningSeverityEnum string

const (
	WarningVerbal  WarningSeverityEnum = "VERBAL"
	WarningWritten WarningSeverityEnum = "WRITTEN"
	WarningFinal   WarningSeverityEnum = "FINAL"
	WarningPIP     WarningSeverityEnum = "PIP"
)

type StaffWarningModel struct {
	StaffWarningID             uuid.UUID           `gorm:"column:staff_warning_id;type:uuid;primaryKey" json:"staff_warning_id"`
	StaffWarningStaffID        uuid.UUID           `gorm:"column:staff_warning_staff_id;type:uuid;not null;index" json:"staff_warning_staff_id"`
	StaffWarningDate           time.Time           `gorm:"column:staff_warning_date;type:date;not null" json:"staff_warning_date"`
	StaffWarningSeverity       WarningSeverityEnum `gorm:"column:staff_warning_severity;type:varchar(10);not null" json:"staff_warning_severity"`
	StaffWarningReason         string              `gorm:"column:staff_warning_reason;type:varchar(200);not null" json:"staff_warning_reason"`
	StaffWarningDescription    string              `gorm:"column:staff_warning_description;type:text" json:"staff_warning_description"`
	StaffWarningAttachmentPath *string             `gorm:"column:staff_warning_attachment_path;type:varchar(255)" json:"staff_warning_attachment_path,omitempty"`
	StaffWarningCreatedAt      time.Time           `gorm:"column:staff_warning_created_at;autoCreateTime" json:"staff_warning_created_at"`
}

func (StaffWarningModel) TableName() string {
	return "staff_warnings"
}

func (m *StaffWarningModel) BeforeCreate(tx *gorm.DB) error {
	if m.StaffWarningID == uuid.Nil {
		m.StaffWarningID = uuid.New()
	}
	return nil
}
