package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientModel struct {
	ClientID            uuid.UUID `gorm:"column:client_id;type:uuid;primaryKey" json:"client_id"`
	ClientName          string    `gorm:"column:client_name;type:varchar(100);uniqueIndex;not null" json:"client_name"`
	ClientContactPerson string    `gorm:"column:client_contact_person;type:varchar(100)" json:"client_contact_person"`
	ClientIsActive      bool      `gorm:"column:client_is_active;not null;default:true" json:"client_is_active"`
	ClientColor         string    `gorm:"column:client_color;type:varchar(7);not null;default:'#3498db'" json:"client_color"` // chart color
	ClientCreatedAt     time.Time `gorm:"column:client_created_at;autoCreateTime" json:"client_created_at"`
	ClientUpdatedAt     time.Time `gorm:"column:client_updated_at;autoUpdateTime" json:"client_updated_at"`
}

func (ClientModel) TableName() string {
	return "clients"
}

func (m *ClientModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClientID == uuid.Nil {
		m.ClientID = uuid.New()
	}
	return nil
}
