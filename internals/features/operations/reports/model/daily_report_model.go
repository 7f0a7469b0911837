package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DailyReportModel struct {
	DailyReportID            uuid.UUID  `gorm:"column:daily_report_id;type:uuid;primaryKey" json:"daily_report_id"`
	DailyReportDate          time.Time  `gorm:"column:daily_report_date;type:date;uniqueIndex;not null" json:"daily_report_date"`
	DailyReportCreatedByID   *uuid.UUID `gorm:"column:daily_report_created_by_id;type:uuid" json:"daily_report_created_by_id,omitempty"`
	DailyReportCreatedByName string     `gorm:"column:daily_report_created_by_name;type:varchar(100)" json:"daily_report_created_by_name"`
	DailyReportManagerNotes  string     `gorm:"column:daily_report_manager_notes;type:text" json:"daily_report_manager_notes"`
	DailyReportIsSubmitted   bool       `gorm:"column:daily_report_is_submitted;not null;default:false" json:"daily_report_is_submitted"`
	DailyReportCreatedAt     time.Time  `gorm:"column:daily_report_created_at;autoCreateTime" json:"daily_report_created_at"`
	DailyReportUpdatedAt     time.Time  `gorm:"column:daily_report_updated_at;autoUpdateTime" json:"daily_report_updated_at"`
}

func (DailyReportModel) TableName() string {
	return "daily_reports"
}

func (m *DailyReportModel) BeforeCreate(tx *gorm.DB) error {
	if m.DailyReportID == uuid.Nil {
		m.DailyReportID = uuid.New()
	}
	return nil
}
