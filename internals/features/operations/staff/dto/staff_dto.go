package dto

import (
	"time"

	"bperformance_backend/internals/features/operations/staff/model"
	helper "bperformance_backend/internals/helpers"

	"github.com/google/uuid"
)

/* ================================ REQUEST ================================ */

type CreateStaffRequest struct {
	FullName     string `json:"full_name" validate:"required,max=100"`
	DepartmentID string `json:"department_id" validate:"required,uuid"`
	JoinedDate   string `json:"joined_date" validate:"omitempty"` // YYYY-MM-DD, defaults to today
}

type UpdateStaffRequest struct {
	FullName     string `json:"full_name" validate:"required,max=100"`
	DepartmentID string `json:"department_id" validate:"required,uuid"`
	IsActive     *bool  `json:"is_active" validate:"omitempty"`
}

type WarningRequest struct {
	Date        string `form:"date" json:"date" validate:"required"` // YYYY-MM-DD
	Severity    string `form:"severity" json:"severity" validate:"required,oneof=VERBAL WRITTEN FINAL PIP"`
	Reason      string `form:"reason" json:"reason" validate:"required,max=200"`
	Description string `form:"description" json:"description" validate:"omitempty"`
}

type NoteRequest struct {
	Content string `json:"content" validate:"required"`
}

func (r *CreateStaffRequest) ToModel() *model.StaffProfileModel {
	departmentID, _ := uuid.Parse(r.DepartmentID)
	m := &model.StaffProfileModel{
		StaffProfileFullName:     r.FullName,
		StaffProfileDepartmentID: departmentID,
		StaffProfileIsActive:     true,
		StaffProfileJoinedDate:   helper.ParseDateOr(r.JoinedDate, time.Now()),
	}
	return m
}

func (r *WarningRequest) ToModel(staffID uuid.UUID) *model.StaffWarningModel {
	return &model.StaffWarningModel{
		StaffWarningStaffID:     staffID,
		StaffWarningDate:        helper.ParseDateOr(r.Date, time.Now()),
		StaffWarningSeverity:    model.WarningSeverityEnum(r.Severity),
		StaffWarningReason:      r.Reason,
		StaffWarningDescription: r.Description,
	}
}

/* =============================== RESPONSE ================================ */

type StaffDetailResponse struct {
	Staff    model.StaffProfileModel   `json:"staff"`
	Warnings []model.StaffWarningModel `json:"warnings"`
	Notes    []model.StaffNoteModel    `json:"notes"`
	Stats    any                       `json:"stats"`
}
