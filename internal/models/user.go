package models

import "time"

// User represents the user model in the database
type User struct {
	ID               uint       `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username         string     `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash     string     `gorm:"not null" json:"-"`
	RefreshTokenHash string     `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Expenses []Expense       `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Budgets  []MonthlyBudget `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
	Limits   []CategoryLimit `gorm:"foreignKey:UserID" json:"limits,omitempty"`
}
