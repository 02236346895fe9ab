package models

import (
	"time"
)

const (
	OnlineOrderPlaced    = "placed"
	OnlineOrderConfirmed = "confirmed"
)

// OnlineOrder is a customer-facing pickup order placed from the public menu.
// It is confirmed once the payment collaborator reports a payment id; the
// gateway wire protocol itself lives outside this backend.
type OnlineOrder struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	UserID    uint              `gorm:"not null;index" json:"user_id"`
	Items     []OnlineOrderItem `json:"items"`
	Total     float64           `gorm:"not null" json:"total"`
	Status    string            `gorm:"type:varchar(10);not null;default:'placed'" json:"status"`
	PaymentID *string           `json:"payment_id,omitempty"`
	Timestamp time.Time         `gorm:"autoCreateTime" json:"timestamp"`
}

type OnlineOrderItem struct {
	ID            uint    `gorm:"primaryKey" json:"-"`
	OnlineOrderID uint    `gorm:"not null;index" json:"-"`
	MenuItemID    uint    `gorm:"not null" json:"menu_item_id"`
	Quantity      int     `gorm:"not null" json:"quantity"`
	Price         float64 `gorm:"not null" json:"price"`
}
