package dto

import (
	"bperformance_backend/internals/features/operations/masterdata/model"
)

// ================== REQUEST ==================
type DepartmentRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type ClientRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	ContactPerson string `json:"contact_person" validate:"max=100"`
	IsActive      *bool  `json:"is_active"`
	Color         string `json:"color" validate:"omitempty,hexcolor"`
}

type CategoryRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	IsActive *bool  `json:"is_active"`
	Color    string `json:"color" validate:"omitempty,hexcolor"`
}

type RatingCriteriaRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	IsActive *bool  `json:"is_active"`
}

// ================ CONVERSION =================
func (r *DepartmentRequest) ToModel() *model.DepartmentModel {
	return &model.DepartmentModel{DepartmentName: r.Name}
}

func (r *ClientRequest) ToModel() *model.ClientModel {
	m := &model.ClientModel{
		ClientName:          r.Name,
		ClientContactPerson: r.ContactPerson,
		ClientIsActive:      true,
		ClientColor:         "#3498db",
	}
	if r.IsActive != nil {
		m.ClientIsActive = *r.IsActive
	}
	if r.Color != "" {
		m.ClientColor = r.Color
	}
	return m
}

func (r *CategoryRequest) ToModel() *model.CategoryModel {
	m := &model.CategoryModel{
		CategoryName:     r.Name,
		CategoryIsActive: true,
		CategoryColor:    "#95a5a6",
	}
	if r.IsActive != nil {
		m.CategoryIsActive = *r.IsActive
	}
	if r.Color != "" {
		m.CategoryColor = r.Color
	}
	return m
}

func (r *RatingCriteriaRequest) ToModel() *model.RatingCriteriaModel {
	m := &model.RatingCriteriaModel{
		RatingCriteriaName:     r.Name,
		RatingCriteriaIsActive: true,
	}
	if r.IsActive != nil {
		m.RatingCriteriaIsActive = *r.IsActive
	}
	return m
}
