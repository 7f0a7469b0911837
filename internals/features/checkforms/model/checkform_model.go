package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmissionStatusEnum tracks a shared form from dispatch to filing.
type SubmissionStatusEnum string

const (
	SubmissionSent      SubmissionStatusEnum = "SENT"
	SubmissionCompleted SubmissionStatusEnum = "COMPLETED"
	SubmissionFiled     SubmissionStatusEnum = "FILED"
)

type CheckFormFolderModel struct {
	CheckFormFolderID        uuid.UUID `gorm:"column:check_form_folder_id;type:uuid;primaryKey" json:"check_form_folder_id"`
	CheckFormFolderName      string    `gorm:"column:check_form_folder_name;type:varchar(50);uniqueIndex;not null" json:"check_form_folder_name"`
	CheckFormFolderCreatedAt time.Time `gorm:"column:check_form_folder_created_at;autoCreateTime" json:"check_form_folder_created_at"`
}

func (CheckFormFolderModel) TableName() string {
	return "check_form_folders"
}

func (m *CheckFormFolderModel) BeforeCreate(tx *gorm.DB) error {
	if m.CheckFormFolderID == uuid.Nil {
		m.CheckFormFolderID = uuid.New()
	}
	return nil
}

// CheckFormTemplateModel stores the checklist definition. Items is a JSON
// array; each item is one of:
//
//	{"type": "check_note", "label": "Is Safe?", "required": true}
//	{"type": "fixed_table", "label": "Stock", "columns": [...], "rows": [[...], ...]}
//	{"type": "simple", "label": "..."} (legacy check + comment)
type CheckFormTemplateModel struct {
	CheckFormTemplateID                uuid.UUID      `gorm:"column:check_form_template_id;type:uuid;primaryKey" json:"check_form_template_id"`
	CheckFormTemplateTitle             string         `gorm:"column:check_form_template_title;type:varchar(100);not null" json:"check_form_template_title"`
	CheckFormTemplateLogoPath          *string        `gorm:"column:check_form_template_logo_path;type:varchar(255)" json:"check_form_template_logo_path,omitempty"`
	CheckFormTemplateCreatedByID       *uuid.UUID     `gorm:"column:check_form_template_created_by_id;type:uuid" json:"check_form_template_created_by_id,omitempty"`
	CheckFormTemplateCreatedByName     string         `gorm:"column:check_form_template_created_by_name;type:varchar(100)" json:"check_form_template_created_by_name"`
	CheckFormTemplateItems             datatypes.JSON `gorm:"column:check_form_template_items" json:"check_form_template_items"`
	CheckFormTemplateInstructions      string         `gorm:"column:check_form_template_instructions;type:text" json:"check_form_template_instructions"`
	CheckFormTemplateHasGeneralComment bool           `gorm:"column:check_form_template_has_general_comment;not null;default:true" json:"check_form_template_has_general_comment"`
	CheckFormTemplateCreatedAt         time.Time      `gorm:"column:check_form_template_created_at;autoCreateTime" json:"check_form_template_created_at"`
}

func (CheckFormTemplateModel) TableName() string {
	return "check_form_templates"
}

func (m *CheckFormTemplateModel) BeforeCreate(tx *gorm.DB) error {
	if m.CheckFormTemplateID == uuid.Nil {
		m.CheckFormTemplateID = uuid.New()
	}
	return nil
}

// CheckFormSubmissionModel is one dispatched copy of a template. The token is
// the only credential the external recipient needs.
type CheckFormSubmissionModel struct {
	CheckFormSubmissionID             uuid.UUID            `gorm:"column:check_form_submission_id;type:uuid;primaryKey" json:"check_form_submission_id"`
	CheckFormSubmissionTemplateID     uuid.UUID            `gorm:"column:check_form_submission_template_id;type:uuid;not null;index" json:"check_form_submission_template_id"`
	CheckFormSubmissionRecipientEmail string               `gorm:"column:check_form_submission_recipient_email;type:varchar(255);not null" json:"check_form_submission_recipient_email"`
	CheckFormSubmissionToken          uuid.UUID            `gorm:"column:check_form_submission_token;type:uuid;uniqueIndex;not null" json:"check_form_submission_token"`
	CheckFormSubmissionStatus         SubmissionStatusEnum `gorm:"column:check_form_submission_status;type:varchar(10);not null;default:'SENT'" json:"check_form_submission_status"`

	CheckFormSubmissionSubmittedAt     *time.Time     `gorm:"column:check_form_submission_submitted_at" json:"check_form_submission_submitted_at,omitempty"`
	CheckFormSubmissionSubmittedByName string         `gorm:"column:check_form_submission_submitted_by_name;type:varchar(100)" json:"check_form_submission_submitted_by_name"`
	CheckFormSubmissionContent         datatypes.JSON `gorm:"column:check_form_submission_content" json:"check_form_submission_content,omitempty"`

	CheckFormSubmissionFolderID  *uuid.UUID `gorm:"column:check_form_submission_folder_id;type:uuid;index" json:"check_form_submission_folder_id,omitempty"`
	CheckFormSubmissionCreatedAt time.Time  `gorm:"column:check_form_submission_created_at;autoCreateTime" json:"check_form_submission_created_at"`
}

func (CheckFormSubmissionModel) TableName() string {
	return "check_form_submissions"
}

func (m *CheckFormSubmissionModel) BeforeCreate(tx *gorm.DB) error {
	if m.CheckFormSubmissionID == uuid.Nil {
		m.CheckFormSubmissionID = uuid.New()
	}
	if m.CheckFormSubmissionToken == uuid.Nil {
		m.CheckFormSubmissionToken = uuid.New()
	}
	return nil
}

// IsClosed reports whether the form can no longer be submitted.
func (m *CheckFormSubmissionModel) IsClosed() bool {
	return m.CheckFormSubmissionStatus == SubmissionCompleted || m.CheckFormSubmissionStatus == SubmissionFiled
}
