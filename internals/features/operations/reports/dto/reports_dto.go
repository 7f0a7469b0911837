package dto

import (
	"bperformance_backend/internals/features/operations/reports/model"
	helper "bperformance_backend/internals/helpers"

	"github.com/google/uuid"
)

/* ================================ REQUEST ================================ */

type TicketRequest struct {
	StaffID      string `form:"staff_id" json:"staff_id" validate:"required,uuid"`
	ClientID     string `form:"client_id" json:"client_id" validate:"required,uuid"`
	CategoryID   string `form:"category_id" json:"category_id" validate:"required,uuid"`
	WorkType     string `form:"work_type" json:"work_type" validate:"required,oneof=INT EXT REM ADM"`
	Status       string `form:"status" json:"status" validate:"required,oneof=COMP BLOCK PEND HOLD CALL WAIT_ST WAIT_CL"`
	WorkLocation string `form:"work_location" json:"work_location" validate:"required,oneof=OFFICE HOME HYBRID"`

	RequestedTime   string `form:"requested_time" json:"requested_time" validate:"required"`
	StartTime       string `form:"start_time" json:"start_time" validate:"required"`
	EndTime         string `form:"end_time" json:"end_time" validate:"required"`
	TravelStartTime string `form:"travel_start" json:"travel_start" validate:"omitempty"`
	TravelEndTime   string `form:"travel_end" json:"travel_end" validate:"omitempty"`

	Description  string `form:"description" json:"description" validate:"required"`
	ManagerNotes string `form:"manager_notes" json:"manager_notes" validate:"omitempty"`
}

type MetricScoreRequest struct {
	Score int `json:"score" validate:"required,min=1,max=10"`
}

type MetricNoteRequest struct {
	Notes string `json:"notes" validate:"omitempty"`
}

type ManagerNotesRequest struct {
	ManagerNotes string `json:"manager_notes" validate:"omitempty"`
}

type WeeklyReportRequest struct {
	StartDate  string   `json:"start_date" validate:"required"`
	EndDate    string   `json:"end_date" validate:"required"`
	Recipients []string `json:"recipients" validate:"required,min=1,dive,email"`
}

// ToModel computes the stored minute columns from the clock strings: total
// work, travel, and response (requested to start, negative allowed).
func (r *TicketRequest) ToModel(reportID uuid.UUID) *model.TicketEntryModel {
	staffID, _ := uuid.Parse(r.StaffID)
	clientID, _ := uuid.Parse(r.ClientID)
	categoryID, _ := uuid.Parse(r.CategoryID)

	m := &model.TicketEntryModel{
		TicketEntryReportID:     reportID,
		TicketEntryStaffID:      staffID,
		TicketEntryClientID:     clientID,
		TicketEntryCategoryID:   categoryID,
		TicketEntryWorkType:     model.WorkTypeEnum(r.WorkType),
		TicketEntryStatus:       model.TicketStatusEnum(r.Status),
		TicketEntryWorkLocation: model.WorkLocationEnum(r.WorkLocation),

		TicketEntryRequestedTime: r.RequestedTime,
		TicketEntryStartTime:     r.StartTime,
		TicketEntryEndTime:       r.EndTime,

		TicketEntryDescription:  r.Description,
		TicketEntryManagerNotes: r.ManagerNotes,

		TicketEntryTotalWorkMinutes: helper.MinutesBetween(r.StartTime, r.EndTime),
		TicketEntryTravelMinutes:    helper.MinutesBetween(r.TravelStartTime, r.TravelEndTime),
		TicketEntryResponseMinutes:  helper.MinutesBetween(r.RequestedTime, r.StartTime),
	}
	if r.TravelStartTime != "" {
		v := r.TravelStartTime
		m.TicketEntryTravelStartTime = &v
	}
	if r.TravelEndTime != "" {
		v := r.TravelEndTime
		m.TicketEntryTravelEndTime = &v
	}
	return m
}
