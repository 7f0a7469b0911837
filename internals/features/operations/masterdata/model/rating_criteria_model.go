package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingCriteriaModel struct {
	RatingCriteriaID        uuid.UUID `gorm:"column:rating_criteria_id;type:uuid;primaryKey" json:"rating_criteria_id"`
	RatingCriteriaName      string    `gorm:"column:rating_criteria_name;type:varchar(50);uniqueIndex;not null" json:"rating_criteria_name"`
	RatingCriteriaIsActive  bool      `gorm:"column:rating_criteria_is_active;not null;default:true" json:"rating_criteria_is_active"`
	RatingCriteriaCreatedAt time.Time `gorm:"column:rating_criteria_created_at;autoCreateTime" json:"rating_criteria_created_at"`
	RatingCriteriaUpdatedAt time.Time `gorm:"column:rating_criteria_updated_at;autoUpdateTime" json:"rating_criteria_updated_at"`
}

func (RatingCriteriaModel) TableName() string {
	return "rating_criteria"
}

func (m *RatingCriteriaModel) BeforeCreate(tx *gorm.DB) error {
	if m.RatingCriteriaID == uuid.Nil {
		m.RatingCriteriaID = uuid.New()
	}
	return nil
}
