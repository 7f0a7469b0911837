package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffMetricModel is one score cell: report × staff × criteria, unique.
type StaffMetricModel struct {
	StaffMetricID         uuid.UUID `gorm:"column:staff_metric_id;type:uuid;primaryKey" json:"staff_metric_id"`
	StaffMetricReportID   uuid.UUID `gorm:"column:staff_metric_report_id;type:uuid;not null;uniqueIndex:uq_staff_metric_cell" json:"staff_metric_report_id"`
	StaffMetricStaffID    uuid.UUID `gorm:"column:staff_metric_staff_id;type:uuid;not null;uniqueIndex:uq_staff_metric_cell" json:"staff_metric_staff_id"`
	StaffMetricCriteriaID uuid.UUID `gorm:"column:staff_metric_criteria_id;type:uuid;not null;uniqueIndex:uq_staff_metric_cell" json:"staff_metric_criteria_id"`

	StaffMetricScore int    `gorm:"column:staff_metric_score;not null;default:5" json:"staff_metric_score"` // 1..10
	StaffMetricNotes string `gorm:"column:staff_metric_notes;type:text" json:"staff_metric_notes"`

	StaffMetricCreatedAt time.Time `gorm:"column:staff_metric_created_at;autoCreateTime" json:"staff_metric_created_at"`
	StaffMetricUpdatedAt time.Time `gorm:"column:staff_metric_updated_at;autoUpdateTime" json:"staff_metric_updated_at"`
}

func (StaffMetricModel) TableName() string {
	return "staff_metrics"
}

func (m *StaffMetricModel) BeforeCreate(tx *gorm.DB) error {
	if m.StaffMetricID == uuid.Nil {
		m.StaffMetricID = uuid.New()
	}
	return nil
}
