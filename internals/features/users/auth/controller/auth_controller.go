package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bperformance_backend/internals/configs"
	"bperformance_backend/internals/features/users/auth/dto"
	"bperformance_backend/internals/features/users/auth/model"
	helper "bperformance_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

// 🟢 POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] bcrypt: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	user := model.SystemUserModel{
		SystemUserUsername: req.Username,
		SystemUserFullName: req.FullName,
		SystemUserEmail:    req.Email,
		SystemUserPassword: string(hash),
		SystemUserIsActive: true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		log.Printf("[ERROR] create user: %v", err)
		return helper.JsonError(c, fiber.StatusConflict, "Username already taken")
	}
	return helper.JsonCreated(c, "User created", dto.ToUserResponse(&user))
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var user model.SystemUserModel
	if err := ctrl.DB.Where("system_user_username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !user.SystemUserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SystemUserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	claims := jwt.MapClaims{
		"sub":  user.SystemUserID.String(),
		"name": user.SystemUserFullName,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return helper.JsonOK(c, "Login success", dto.LoginResponse{
		AccessToken: signed,
		User:        dto.ToUserResponse(&user),
	})
}

// 🟢 GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	actor, err := helper.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var user model.SystemUserModel
	if err := ctrl.DB.Where("system_user_id = ?", actor.ID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "", dto.ToUserResponse(&user))
}

// 🛑 POST /api/auth/users/:id/deactivate
func (ctrl *AuthController) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")
	res := ctrl.DB.Model(&model.SystemUserModel{}).
		Where("system_user_id = ?", id).
		Update("system_user_is_active", false)
	if res.Error != nil {
		log.Printf("[ERROR] deactivate user: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonUpdated(c, "User deactivated", nil)
}
