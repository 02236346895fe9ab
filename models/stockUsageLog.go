package models

import (
	"time"
)

// Usage-log categories for manual stock depletion outside of billing.
var UsageCategories = []string{"kitchen_prep", "spillage", "staff_meal", "other"}

type StockUsageLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	StockItemID  uint      `gorm:"not null;index" json:"stock_item_id"`
	QuantityUsed float64   `gorm:"not null" json:"quantity_used"`
	Category     string    `gorm:"type:varchar(20);not null" json:"category"`
	Notes        *string   `gorm:"type:text" json:"notes,omitempty"`
	RecordedBy   uint      `gorm:"not null" json:"recorded_by"`
	Timestamp    time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func ValidUsageCategory(category string) bool {
	for _, c := range UsageCategories {
		if c == category {
			return true
		}
	}
	return false
}
