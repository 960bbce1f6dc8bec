package services

import (
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// UserServicer defines the contract for credential-store business logic.
type UserServicer interface {
	Register(username, password string) (*models.User, error)
	AttemptLogin(username, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// ExpenseFilter holds optional filter parameters for listing expenses.
// Dates are YYYY-MM-DD strings, matching the storage format.
type ExpenseFilter struct {
	Category *string
	FromDate *string
	ToDate   *string
}

// ExpenseUpdate holds the fields of an expense that may be changed.
// Nil fields are left untouched.
type ExpenseUpdate struct {
	Amount      *float64
	Category    *string
	Date        *string
	Description *string
}

// ExpenseServicer defines the contract for expense-ledger business logic.
// Update and Delete take the acting user's ID and verify ownership.
type ExpenseServicer interface {
	AddExpense(userID uint, amount float64, category, date, description string) (*models.Expense, error)
	GetUserExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, update ExpenseUpdate) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
}

// BudgetServicer defines the contract for the budget store and the
// per-category limits that feed the insight engine.
type BudgetServicer interface {
	SetBudget(userID uint, month string, amount float64) (*models.MonthlyBudget, error)
	GetBudget(userID uint, month string) (*models.MonthlyBudget, error)
	SetCategoryLimit(userID uint, category string, limit float64) (*models.CategoryLimit, error)
	ListCategoryLimits(userID uint) ([]models.CategoryLimit, error)
	GetCategoryLimits(userID uint) (map[string]float64, error)
}

// CategoryTotal is one slice of the spending-by-category breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// MonthTotal is one point of the spending-over-time series.
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// MonthlySummary contains spending vs budget data for one month.
// Budget, Remaining and Percentage are nil when no budget is set,
// so "no budget configured" stays distinct from "budget is zero".
type MonthlySummary struct {
	Month      string   `json:"month"`
	Spent      float64  `json:"spent"`
	Budget     *float64 `json:"budget,omitempty"`
	Remaining  *float64 `json:"remaining,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// ReportServicer defines the contract for chart aggregates and insights.
type ReportServicer interface {
	CategoryTotals(userID uint) ([]CategoryTotal, error)
	MonthlyTotals(userID uint) ([]MonthTotal, error)
	MonthlySummary(userID uint, month string) (*MonthlySummary, error)
	Insights(userID uint) ([]string, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
