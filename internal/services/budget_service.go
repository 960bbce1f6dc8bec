package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// budgetService handles the budget store and per-category limits.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// SetBudget upserts the budget for (user, month): an existing row is
// overwritten, otherwise a new one is inserted.
func (s *budgetService) SetBudget(userID uint, month string, amount float64) (*models.MonthlyBudget, error) {
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget must not be negative")
	}

	budget := &models.MonthlyBudget{
		UserID: userID,
		Month:  month,
		Budget: amount,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"budget", "updated_at"}),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Reload so the caller sees the surviving row, not the insert attempt.
	return s.GetBudget(userID, month)
}

// GetBudget returns the stored budget for (user, month), or
// ErrBudgetNotSet when none was ever set. A zero budget is a valid
// stored value and is not treated as absence.
func (s *budgetService) GetBudget(userID uint, month string) (*models.MonthlyBudget, error) {
	var budget models.MonthlyBudget
	if err := s.db.Where("user_id = ? AND month = ?", userID, month).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotSet
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// SetCategoryLimit upserts the spending limit for (user, category).
func (s *budgetService) SetCategoryLimit(userID uint, category string, limit float64) (*models.CategoryLimit, error) {
	if strings.TrimSpace(category) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if limit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must not be negative")
	}

	cl := &models.CategoryLimit{
		UserID:   userID,
		Category: category,
		Limit:    limit,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"limit_amount", "updated_at"}),
	}).Create(cl).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var stored models.CategoryLimit
	if err := s.db.Where("user_id = ? AND category = ?", userID, category).First(&stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stored, nil
}

// ListCategoryLimits returns the user's category limits ordered by category.
func (s *budgetService) ListCategoryLimits(userID uint) ([]models.CategoryLimit, error) {
	var limits []models.CategoryLimit
	if err := s.db.Where("user_id = ?", userID).Order("category").Find(&limits).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return limits, nil
}

// GetCategoryLimits returns the user's limits as a category→limit map
// for the insight engine.
func (s *budgetService) GetCategoryLimits(userID uint) (map[string]float64, error) {
	limits, err := s.ListCategoryLimits(userID)
	if err != nil {
		return nil, err
	}

	m := make(map[string]float64, len(limits))
	for _, l := range limits {
		m[l.Category] = l.Limit
	}
	return m, nil
}
