package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/services"
)

// BudgetHandler handles budget-store and category-limit requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// SetBudgetRequest represents the request payload for setting a monthly budget.
type SetBudgetRequest struct {
	Budget float64 `json:"budget" binding:"min=0"`
}

// SetCategoryLimitRequest represents the request payload for setting a
// per-category spending limit.
type SetCategoryLimitRequest struct {
	Category string  `json:"category" binding:"required,expense_category,max=100"`
	Limit    float64 `json:"limit" binding:"min=0"`
}

// SetBudget handles upserting the budget for a month.
// @Summary     Set monthly budget
// @Description Set (insert or overwrite) the budget for the given month
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month   path string           true "Month key (YYYY-MM)"
// @Param       request body SetBudgetRequest true "Budget amount"
// @Success     200 {object} models.MonthlyBudget "Stored budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{month} [put]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := parseMonthKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.SetBudget(userID, month, req.Budget)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_BUDGET", "monthly_budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"month": month, "budget": req.Budget})

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetBudget handles retrieving the budget for a month.
// @Summary     Get monthly budget
// @Description Get the budget for the given month; 404 with code BUDGET_NOT_SET when none was ever set
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month path string true "Month key (YYYY-MM)"
// @Success     200 {object} models.MonthlyBudget "Stored budget"
// @Failure     400 {object} ErrorResponse "Invalid month key"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No budget configured"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{month} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := parseMonthKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudget(userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// SetCategoryLimit handles upserting a per-category spending limit.
// @Summary     Set category limit
// @Description Set (insert or overwrite) the spending limit for a category
// @Tags        limits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetCategoryLimitRequest true "Category and limit"
// @Success     200 {object} models.CategoryLimit "Stored limit"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /limits [put]
func (h *BudgetHandler) SetCategoryLimit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetCategoryLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	limit, err := h.budgetService.SetCategoryLimit(userID, req.Category, req.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_CATEGORY_LIMIT", "category_limit", limit.ID, c.ClientIP(),
		map[string]interface{}{"category": req.Category, "limit": req.Limit})

	c.JSON(http.StatusOK, gin.H{"limit": limit})
}

// GetCategoryLimits handles listing the user's category limits.
// @Summary     List category limits
// @Description Get all category spending limits for the authenticated user
// @Tags        limits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.CategoryLimit "Category limits"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /limits [get]
func (h *BudgetHandler) GetCategoryLimits(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limits, err := h.budgetService.ListCategoryLimits(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"limits": limits})
}
