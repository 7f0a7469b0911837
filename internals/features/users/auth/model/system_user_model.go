package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SystemUserModel struct {
	SystemUserID       uuid.UUID `gorm:"column:system_user_id;type:uuid;primaryKey" json:"system_user_id"`
	SystemUserUsername string    `gorm:"column:system_user_username;type:varchar(50);uniqueIndex;not null" json:"system_user_username"`
	SystemUserFullName string    `gorm:"column:system_user_full_name;type:varchar(100);not null" json:"system_user_full_name"`
	SystemUserEmail    string    `gorm:"column:system_user_email;type:varchar(255)" json:"system_user_email"`
	SystemUserPassword string    `gorm:"column:system_user_password;not null" json:"-"`
	SystemUserIsActive bool      `gorm:"column:system_user_is_active;not null;default:true" json:"system_user_is_active"`

	SystemUserCreatedAt time.Time `gorm:"column:system_user_created_at;autoCreateTime" json:"system_user_created_at"`
	SystemUserUpdatedAt time.Time `gorm:"column:system_user_updated_at;autoUpdateTime" json:"system_user_updated_at"`
}

func (SystemUserModel) TableName() string {
	return "system_users"
}

func (m *SystemUserModel) BeforeCreate(tx *gorm.DB) error {
	if m.SystemUserID == uuid.Nil {
		m.SystemUserID = uuid.New()
	}
	return nil
}
