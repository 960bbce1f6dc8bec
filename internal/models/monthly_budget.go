package models

// MonthlyBudget holds one overall spending budget per (user, month).
// Month is stored as a YYYY-MM text string; later writes overwrite.
type MonthlyBudget struct {
	Base
	UserID uint    `gorm:"not null;uniqueIndex:idx_budget_user_month" json:"user_id"`
	Month  string  `gorm:"not null;uniqueIndex:idx_budget_user_month" json:"month"`
	Budget float64 `gorm:"not null" json:"budget"`
}
