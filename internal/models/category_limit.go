package models

// CategoryLimit holds a per-category spending limit used by the
// insight engine. At most one row per (user, category); upserted.
type CategoryLimit struct {
	Base
	UserID   uint    `gorm:"not null;uniqueIndex:idx_limit_user_category" json:"user_id"`
	Category string  `gorm:"not null;uniqueIndex:idx_limit_user_category" json:"category"`
	Limit    float64 `gorm:"column:limit_amount;not null" json:"limit"`
}
