package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffNoteModel struct {
	StaffNoteID            uuid.UUID  `gorm:"column:staff_note_id;type:uuid;primaryKey" json:"staff_note_id"`
	StaffNoteStaffID       uuid.UUID  `gorm:"column:staff_note_staff_id;type:uuid;not null;index" json:"staff_note_staff_id"`
	StaffNoteContent       string     `gorm:"column:staff_note_content;type:text;not null" json:"staff_note_content"`
	StaffNoteCreatedByID   *uuid.UUID `gorm:"column:staff_note_created_by_id;type:uuid" json:"staff_note_created_by_id,omitempty"`
	StaffNoteCreatedByName string     `gorm:"column:staff_note_created_by_name;type:varchar(100)" json:"staff_note_created_by_name"`
	StaffNoteCreatedAt     time.Time  `gorm:"column:staff_note_created_at;autoCreateTime" json:"staff_note_created_at"`
}

func (StaffNoteModel) TableName() string {
	return "staff_notes"
}

func (m *StaffNoteModel) BeforeCreate(tx *gorm.DB) error {
	if m.StaffNoteID == uuid.Nil {
		m.StaffNoteID = uuid.New()
	}
	return nil
}
