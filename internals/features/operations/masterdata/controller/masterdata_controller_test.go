package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bperformance_backend/internals/features/operations/masterdata/model"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.DepartmentModel{},
		&model.ClientModel{},
		&model.CategoryModel{},
		&model.RatingCriteriaModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctrl := New(db, validator.New())
	app := fiber.New()
	app.Get("/api/settings/clients", ctrl.ListClients)
	app.Post("/api/settings/clients", ctrl.CreateClient)
	app.Delete("/api/settings/clients/:id", ctrl.DeleteClient)
	app.Post("/api/settings/departments", ctrl.CreateDepartment)
	app.Delete("/api/settings/departments/:id", ctrl.DeleteDepartment)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload any) *http.Response {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func TestCreateAndListClients(t *testing.T) {
	app, db := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/settings/clients", fiber.Map{
		"name":           "Acme Corp",
		"contact_person": "Jo Reyes",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}

	// The client name is unique.
	resp = doJSON(t, app, fiber.MethodPost, "/api/settings/clients", fiber.Map{
		"name": "Acme Corp",
	})
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("duplicate status = %d, want 409", resp.StatusCode)
	}

	dormant := model.ClientModel{ClientName: "Dormant Ltd"}
	if err := db.Create(&dormant).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	// Zero-value bools fall back to the column default on insert, so the
	// inactive flag needs an explicit update.
	db.Model(&dormant).Update("client_is_active", false)

	resp = doJSON(t, app, fiber.MethodGet, "/api/settings/clients?active=true", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("list status = %d, want 200", resp.StatusCode)
	}
	var listBody struct {
		Success bool               `json:"success"`
		Data    []model.ClientModel `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listBody); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if !listBody.Success || len(listBody.Data) != 1 || listBody.Data[0].ClientName != "Acme Corp" {
		t.Errorf("active filter returned %+v, want only Acme Corp", listBody.Data)
	}
}

func TestCreateClientValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/settings/clients", fiber.Map{
		"contact_person": "no name given",
	})
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	var body struct {
		ErrorCode string              `json:"error_code"`
		Errors    map[string][]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ErrorCode != "VALIDATION_ERROR" || len(body.Errors) == 0 {
		t.Errorf("body = %+v, want VALIDATION_ERROR with field errors", body)
	}
}

func TestDeleteDepartment(t *testing.T) {
	app, db := newTestApp(t)

	dept := model.DepartmentModel{DepartmentName: "Support"}
	if err := db.Create(&dept).Error; err != nil {
		t.Fatalf("seed department: %v", err)
	}

	target := "/api/settings/departments/" + dept.DepartmentID.String()
	resp := doJSON(t, app, fiber.MethodDelete, target, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodDelete, target, nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodDelete, "/api/settings/departments/not-a-uuid", nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", resp.StatusCode)
	}
}
