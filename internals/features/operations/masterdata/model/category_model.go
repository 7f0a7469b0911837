package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryModel struct {
	CategoryID        uuid.UUID `gorm:"column:category_id;type:uuid;primaryKey" json:"category_id"`
	CategoryName      string    `gorm:"column:category_name;type:varchar(50);uniqueIndex;not null" json:"category_name"`
	CategoryIsActive  bool      `gorm:"column:category_is_active;not null;default:true" json:"category_is_active"`
	CategoryColor     string    `gorm:"column:category_color;type:varchar(7);not null;default:'#95a5a6'" json:"category_color"` // chart color
	CategoryCreatedAt time.Time `gorm:"column:category_created_at;autoCreateTime" json:"category_created_at"`
	CategoryUpdatedAt time.Time `gorm:"column:category_updated_at;autoUpdateTime" json:"category_updated_at"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (m *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.CategoryID == uuid.Nil {
		m.CategoryID = uuid.New()
	}
	return nil
}
