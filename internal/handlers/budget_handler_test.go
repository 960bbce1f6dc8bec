package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/services"
)

type mockBudgetService struct {
	setBudgetFn          func(userID uint, month string, amount float64) (*models.MonthlyBudget, error)
	getBudgetFn          func(userID uint, month string) (*models.MonthlyBudget, error)
	setCategoryLimitFn   func(userID uint, category string, limit float64) (*models.CategoryLimit, error)
	listCategoryLimitsFn func(userID uint) ([]models.CategoryLimit, error)
	getCategoryLimitsFn  func(userID uint) (map[string]float64, error)
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func (m *mockBudgetService) SetBudget(userID uint, month string, amount float64) (*models.MonthlyBudget, error) {
	if m.setBudgetFn != nil {
		return m.setBudgetFn(userID, month, amount)
	}
	return &models.MonthlyBudget{}, nil
}

func (m *mockBudgetService) GetBudget(userID uint, month string) (*models.MonthlyBudget, error) {
	if m.getBudgetFn != nil {
		return m.getBudgetFn(userID, month)
	}
	return &models.MonthlyBudget{}, nil
}

func (m *mockBudgetService) SetCategoryLimit(userID uint, category string, limit float64) (*models.CategoryLimit, error) {
	if m.setCategoryLimitFn != nil {
		return m.setCategoryLimitFn(userID, category, limit)
	}
	return &models.CategoryLimit{}, nil
}

func (m *mockBudgetService) ListCategoryLimits(userID uint) ([]models.CategoryLimit, error) {
	if m.listCategoryLimitsFn != nil {
		return m.listCategoryLimitsFn(userID)
	}
	return []models.CategoryLimit{}, nil
}

func (m *mockBudgetService) GetCategoryLimits(userID uint) (map[string]float64, error) {
	if m.getCategoryLimitsFn != nil {
		return m.getCategoryLimitsFn(userID)
	}
	return map[string]float64{}, nil
}

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	r.PUT("/budgets/:month", injectUserID(1), handler.SetBudget)
	r.GET("/budgets/:month", injectUserID(1), handler.GetBudget)
	r.PUT("/limits", injectUserID(1), handler.SetCategoryLimit)
	r.GET("/limits", injectUserID(1), handler.GetCategoryLimits)
	return r
}

func TestBudgetHandler_SetBudget(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotMonth string
		var gotAmount float64
		budgetSvc := &mockBudgetService{
			setBudgetFn: func(userID uint, month string, amount float64) (*models.MonthlyBudget, error) {
				gotMonth, gotAmount = month, amount
				return &models.MonthlyBudget{Base: models.Base{ID: 1}, UserID: userID, Month: month, Budget: amount}, nil
			},
		}
		handler := NewBudgetHandler(budgetSvc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "PUT", "/budgets/2025-03", `{"budget":500}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotMonth != "2025-03" || gotAmount != 500 {
			t.Errorf("expected 2025-03/500 passed to service, got %s/%f", gotMonth, gotAmount)
		}
		result := parseJSON(t, rec)
		budget := result["budget"].(map[string]interface{})
		if budget["budget"] != float64(500) {
			t.Errorf("expected budget 500, got %v", budget["budget"])
		}
	})

	t.Run("accepts zero budget", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			setBudgetFn: func(userID uint, month string, amount float64) (*models.MonthlyBudget, error) {
				return &models.MonthlyBudget{UserID: userID, Month: month, Budget: amount}, nil
			},
		}
		handler := NewBudgetHandler(budgetSvc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "PUT", "/budgets/2025-03", `{"budget":0}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on negative budget", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "PUT", "/budgets/2025-03", `{"budget":-100}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed month", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "PUT", "/budgets/March-2025", `{"budget":500}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	t.Run("returns 200 with stored budget", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			getBudgetFn: func(userID uint, month string) (*models.MonthlyBudget, error) {
				return &models.MonthlyBudget{Base: models.Base{ID: 1}, UserID: userID, Month: month, Budget: 500}, nil
			},
		}
		handler := NewBudgetHandler(budgetSvc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/budgets/2025-03", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		budget := result["budget"].(map[string]interface{})
		if budget["month"] != "2025-03" {
			t.Errorf("expected month 2025-03, got %v", budget["month"])
		}
	})

	t.Run("returns 404 when no budget set", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			getBudgetFn: func(_ uint, _ string) (*models.MonthlyBudget, error) {
				return nil, apperrors.ErrBudgetNotSet
			},
		}
		handler := NewBudgetHandler(budgetSvc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/budgets/2025-03", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_NOT_SET")
	})

	t.Run("returns 400 on malformed month", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/budgets/2025-13", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_SetCategoryLimit(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			setCategoryLimitFn: func(userID uint, category string, limit float64) (*models.CategoryLimit, error) {
				return &models.CategoryLimit{Base: models.Base{ID: 1}, UserID: userID, Category: category, Limit: limit}, nil
			},
		}
		handler := NewBudgetHandler(budgetSvc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "PUT", "/limits", `{"category":"Food","limit":250}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		limit := result["limit"].(map[string]interface{})
		if limit["category"] != "Food" {
			t.Errorf("expected category Food, got %v", limit["category"])
		}
	})

	t.Run("returns 400 on missing category", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "PUT", "/limits", `{"limit":250}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on negative limit", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "PUT", "/limits", `{"category":"Food","limit":-1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_GetCategoryLimits(t *testing.T) {
	t.Run("returns 200 with limits", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			listCategoryLimitsFn: func(userID uint) ([]models.CategoryLimit, error) {
				return []models.CategoryLimit{
					{UserID: userID, Category: "Food", Limit: 250},
					{UserID: userID, Category: "Travel", Limit: 200},
				}, nil
			},
		}
		handler := NewBudgetHandler(budgetSvc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/limits", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		limits := result["limits"].([]interface{})
		if len(limits) != 2 {
			t.Errorf("expected 2 limits, got %d", len(limits))
		}
	})

	t.Run("returns 200 with empty list", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/limits", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
