package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bperformance_backend/internals/features/operations/masterdata/dto"
	"bperformance_backend/internals/features/operations/masterdata/model"
	helper "bperformance_backend/internals/helpers"
)

// MasterdataController serves the settings screens: departments, clients,
// categories and rating criteria. Plain CRUD, hard deletes like the rest of
// the settings page.
type MasterdataController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *MasterdataController {
	return &MasterdataController{DB: db, Validate: v}
}

/* =========================
   Departments
   ========================= */

// 🟢 GET /api/settings/departments
func (ctrl *MasterdataController) ListDepartments(c *fiber.Ctx) error {
	var items []model.DepartmentModel
	if err := ctrl.DB.Order("department_name ASC").Find(&items).Error; err != nil {
		log.Printf("[ERROR] list departments: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch departments")
	}
	return helper.JsonOK(c, "", items)
}

// 🟢 POST /api/settings/departments
func (ctrl *MasterdataController) CreateDepartment(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	item := req.ToModel()
	if err := ctrl.DB.Create(item).Error; err != nil {
		log.Printf("[ERROR] create department: %v", err)
		return helper.JsonError(c, fiber.StatusConflict, "Department already exists")
	}
	return helper.JsonCreated(c, "Department created", item)
}

// 🛑 DELETE /api/settings/departments/:id
func (ctrl *MasterdataController) DeleteDepartment(c *fiber.Ctx) error {
	return ctrl.deleteByID(c, &model.DepartmentModel{}, "department_id", "Department")
}

/* =========================
   Clients
   ========================= */

// 🟢 GET /api/settings/clients[?active=true]
func (ctrl *MasterdataController) ListClients(c *fiber.Ctx) error {
	q := ctrl.DB.Order("client_name ASC")
	if c.Query("active") == "true" {
		q = q.Where("client_is_active = ?", true)
	}
	var items []model.ClientModel
	if err := q.Find(&items).Error; err != nil {
		log.Printf("[ERROR] list clients: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch clients")
	}
	return helper.JsonOK(c, "", items)
}

// 🟢 POST /api/settings/clients
func (ctrl *MasterdataController) CreateClient(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	item := req.ToModel()
	if err := ctrl.DB.Create(item).Error; err != nil {
		log.Printf("[ERROR] create client: %v", err)
		return helper.JsonError(c, fiber.StatusConflict, "Client already exists")
	}
	return helper.JsonCreated(c, "Client created", item)
}

// 🛑 DELETE /api/settings/clients/:id
func (ctrl *MasterdataController) DeleteClient(c *fiber.Ctx) error {
	return ctrl.deleteByID(c, &model.ClientModel{}, "client_id", "Client")
}

/* =========================
   Categories
   ========================= */

// 🟢 GET /api/settings/categories[?active=true]
func (ctrl *MasterdataController) ListCategories(c *fiber.Ctx) error {
	q := ctrl.DB.Order("category_name ASC")
	if c.Query("active") == "true" {
		q = q.Where("category_is_active = ?", true)
	}
	var items []model.CategoryModel
	if err := q.Find(&items).Error; err != nil {
		log.Printf("[ERROR] list categories: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch categories")
	}
	return helper.JsonOK(c, "", items)
}

// 🟢 POST /api/settings/categories
func (ctrl *MasterdataController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	item := req.ToModel()
	if err := ctrl.DB.Create(item).Error; err != nil {
		log.Printf("[ERROR] create category: %v", err)
		return helper.JsonError(c, fiber.StatusConflict, "Category already exists")
	}
	return helper.JsonCreated(c, "Category created", item)
}

// 🛑 DELETE /api/settings/categories/:id
func (ctrl *MasterdataController) DeleteCategory(c *fiber.Ctx) error {
	return ctrl.deleteByID(c, &model.CategoryModel{}, "category_id", "Category")
}

/* =========================
   Rating criteria
   ========================= */

// 🟢 GET /api/settings/criteria[?active=true]
func (ctrl *MasterdataController) ListCriteria(c *fiber.Ctx) error {
	q := ctrl.DB.Order("rating_criteria_name ASC")
	if c.Query("active") == "true" {
		q = q.Where("rating_criteria_is_active = ?", true)
	}
	var items []model.RatingCriteriaModel
	if err := q.Find(&items).Error; err != nil {
		log.Printf("[ERROR] list criteria: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch criteria")
	}
	return helper.JsonOK(c, "", items)
}

// 🟢 POST /api/settings/criteria
func (ctrl *MasterdataController) CreateCriteria(c *fiber.Ctx) error {
	var req dto.RatingCriteriaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	item := req.ToModel()
	if err := ctrl.DB.Create(item).Error; err != nil {
		log.Printf("[ERROR] create criteria: %v", err)
		return helper.JsonError(c, fiber.StatusConflict, "Criteria already exists")
	}
	return helper.JsonCreated(c, "Criteria created", item)
}

// 🛑 DELETE /api/settings/criteria/:id
func (ctrl *MasterdataController) DeleteCriteria(c *fiber.Ctx) error {
	return ctrl.deleteByID(c, &model.RatingCriteriaModel{}, "rating_criteria_id", "Criteria")
}

/* =========================
   Shared
   ========================= */

func (ctrl *MasterdataController) deleteByID(c *fiber.Ctx, m any, idColumn, label string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}
	res := ctrl.DB.Where(idColumn+" = ?", id).Delete(m)
	if res.Error != nil {
		log.Printf("[ERROR] delete %s: %v", label, res.Error)
		return helper.JsonError(c, fiber.StatusConflict, label+" is still referenced and cannot be deleted")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, label+" not found")
	}
	return helper.JsonDeleted(c, label+" deleted", nil)
}
