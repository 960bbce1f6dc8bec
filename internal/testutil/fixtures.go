package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"spendwise/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	username := fmt.Sprintf("user%d", nextID())
	return CreateTestUserWithUsername(t, db, username)
}

// CreateTestUserWithUsername creates a user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense for the given user.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, amount float64, category, date string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: fmt.Sprintf("Test expense %d", nextID()),
		Date:        date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudget creates a monthly budget for the given user and month.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, month string, amount float64) *models.MonthlyBudget {
	t.Helper()

	budget := &models.MonthlyBudget{
		UserID: userID,
		Month:  month,
		Budget: amount,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestCategoryLimit creates a spending limit for the given category.
func CreateTestCategoryLimit(t *testing.T, db *gorm.DB, userID uint, category string, limit float64) *models.CategoryLimit {
	t.Helper()

	cl := &models.CategoryLimit{
		UserID:   userID,
		Category: category,
		Limit:    limit,
	}
	if err := db.Create(cl).Error; err != nil {
		t.Fatalf("failed to create test category limit: %v", err)
	}
	return cl
}
