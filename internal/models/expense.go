package models

import "time"

// DateLayout is the storage format for expense dates.
const DateLayout = "2006-01-02"

// MonthLayout is the storage format for budget month keys.
const MonthLayout = "2006-01"

// DefaultCategories is the suggested category set surfaced to clients.
// The schema stores free text, so this is not a constraint.
var DefaultCategories = []string{"Food", "Travel", "Rent", "Shopping", "Other"}

// Expense represents a single spending record owned by a user.
// Date is stored as a YYYY-MM-DD text string.
type Expense struct {
	ID          uint      `gorm:"column:expense_id;primaryKey" json:"expense_id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `json:"description"`
	Date        string    `gorm:"not null" json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
