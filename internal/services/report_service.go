package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/insights"
	"spendwise/internal/models"
)

// reportService computes chart aggregates and insights over the
// expense ledger.
type reportService struct {
	db            *gorm.DB
	budgetService BudgetServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, budgetService BudgetServicer) ReportServicer {
	return &reportService{db: db, budgetService: budgetService}
}

// CategoryTotals returns per-category spending sums, largest first.
// Equal totals order by category so the result is deterministic.
func (s *reportService) CategoryTotals(userID uint) ([]CategoryTotal, error) {
	var totals []CategoryTotal
	err := s.db.Model(&models.Expense{}).
		Select("category, SUM(amount) AS total").
		Where("user_id = ?", userID).
		Group("category").
		Order("total DESC, category ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if totals == nil {
		totals = []CategoryTotal{}
	}
	return totals, nil
}

// MonthlyTotals returns per-month spending sums in ascending month
// order. The month key is the YYYY-MM prefix of the stored date.
func (s *reportService) MonthlyTotals(userID uint) ([]MonthTotal, error) {
	var totals []MonthTotal
	err := s.db.Model(&models.Expense{}).
		Select("substr(date, 1, 7) AS month, SUM(amount) AS total").
		Where("user_id = ?", userID).
		Group("substr(date, 1, 7)").
		Order("month ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if totals == nil {
		totals = []MonthTotal{}
	}
	return totals, nil
}

// MonthlySummary returns total spend for the month plus budget,
// remaining and percent-used when a budget is configured.
func (s *reportService) MonthlySummary(userID uint, month string) (*MonthlySummary, error) {
	var spent float64
	err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND date LIKE ?", userID, month+"-%").
		Scan(&spent).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &MonthlySummary{Month: month, Spent: spent}

	budget, err := s.budgetService.GetBudget(userID, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrBudgetNotSet) {
			return summary, nil
		}
		return nil, err
	}

	remaining := budget.Budget - spent
	summary.Budget = &budget.Budget
	summary.Remaining = &remaining
	if budget.Budget > 0 {
		percentage := spent / budget.Budget * 100
		summary.Percentage = &percentage
	}

	return summary, nil
}

// Insights loads the user's expenses and category limits and delegates
// to the pure insight engine.
func (s *reportService) Insights(userID uint) ([]string, error) {
	var rows []insights.Expense
	err := s.db.Model(&models.Expense{}).
		Select("category, amount").
		Where("user_id = ?", userID).
		Order("expense_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	limits, err := s.budgetService.GetCategoryLimits(userID)
	if err != nil {
		return nil, err
	}

	return insights.Generate(rows, limits), nil
}
