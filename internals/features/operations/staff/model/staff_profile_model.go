package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffProfileModel struct {
	StaffProfileID           uuid.UUID  `gorm:"column:staff_profile_id;type:uuid;primaryKey" json:"staff_profile_id"`
	StaffProfileFullName     string     `gorm:"column:staff_profile_full_name;type:varchar(100);not null" json:"staff_profile_full_name"`
	StaffProfileDepartmentID uuid.UUID  `gorm:"column:staff_profile_department_id;type:uuid;not null" json:"staff_profile_department_id"`
	StaffProfilePicturePath  *string    `gorm:"column:staff_profile_picture_path;type:varchar(255)" json:"staff_profile_picture_path,omitempty"`
	StaffProfileIsActive     bool       `gorm:"column:staff_profile_is_active;not null;default:true" json:"staff_profile_is_active"`
	StaffProfileJoinedDate   time.Time  `gorm:"column:staff_profile_joined_date;type:date;not null;autoCreateTime" json:"staff_profile_joined_date"`
	StaffProfileCreatedAt    time.Time  `gorm:"column:staff_profile_created_at;autoCreateTime" json:"staff_profile_created_at"`
	StaffProfileUpdatedAt    time.Time  `gorm:"column:staff_profile_updated_at;autoUpdateTime" json:"staff_profile_updated_at"`
}

func (StaffProfileModel) TableName() string {
	return "staff_profiles"
}

func (m *StaffProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.StaffProfileID == uuid.Nil {
		m.StaffProfileID = uuid.New()
	}
	return nil
}
