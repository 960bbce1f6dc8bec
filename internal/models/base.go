package models

import "time"

// Base contains common columns for tables keyed by a plain "id" column.
// User and Expense carry their own primary keys because the on-disk
// schema names them user_id and expense_id.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
