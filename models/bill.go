package models

import (
	"time"
)

const (
	BillStatusUnpaid = "unpaid"
	BillStatusPaid   = "paid"
)

// Bill aggregates one table's served orders (or a single pickup order, in
// which case TableNumber is nil). Tax is folded into item prices, so total
// always equals subtotal. Once paid a bill is never re-opened.
type Bill struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber *int      `json:"table_number,omitempty"`
	OrderIDs    []uint    `gorm:"serializer:json;type:text" json:"order_ids"`
	WaiterID    *uint     `json:"waiter_id,omitempty"`
	Subtotal    float64   `gorm:"not null" json:"subtotal"`
	Tax         float64   `gorm:"not null" json:"tax"`
	Total       float64   `gorm:"not null" json:"total"`
	Status      string    `gorm:"type:varchar(10);not null;default:'unpaid'" json:"status"`
	Timestamp   time.Time `gorm:"autoCreateTime" json:"timestamp"`
}
