// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"spendwise/internal/models"
)

var monthKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("month_key", validateMonthKey)
		_ = v.RegisterValidation("expense_date", validateExpenseDate)
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
	}
}

// validateMonthKey accepts YYYY-MM month keys.
func validateMonthKey(fl validator.FieldLevel) bool {
	return monthKeyRegex.MatchString(fl.Field().String())
}

// validateExpenseDate accepts calendar dates in YYYY-MM-DD form.
func validateExpenseDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

// validateExpenseCategory rejects blank or whitespace-only categories.
// Categories are otherwise free text; DefaultCategories is a suggestion.
func validateExpenseCategory(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
