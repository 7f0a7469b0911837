package dto

import (
	"github.com/google/uuid"

	"bperformance_backend/internals/features/users/auth/model"
)

// ================== REQUEST ==================
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ================== RESPONSE ==================
type UserResponse struct {
	SystemUserID uuid.UUID `json:"system_user_id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	IsActive     bool      `json:"is_active"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// ================ CONVERSION =================
func ToUserResponse(m *model.SystemUserModel) UserResponse {
	return UserResponse{
		SystemUserID: m.SystemUserID,
		Username:     m.SystemUserUsername,
		FullName:     m.SystemUserFullName,
		Email:        m.SystemUserEmail,
		IsActive:     m.SystemUserIsActive,
	}
}
