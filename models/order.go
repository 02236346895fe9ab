package models

import (
	"time"
)

// Order statuses. The transition table below is the single source of truth for
// the lifecycle; anything outside it is rejected.
const (
	OrderStatusPending   = "pending"
	OrderStatusApproved  = "approved"
	OrderStatusPrepared  = "prepared"
	OrderStatusServed    = "served"
	OrderStatusCancelled = "cancelled"
	OrderStatusBilled    = "billed"
)

const (
	OrderTypeDineIn = "dine-in"
	OrderTypePickup = "pickup"
)

var orderTransitions = map[string][]string{
	OrderStatusPending:  {OrderStatusApproved, OrderStatusCancelled},
	OrderStatusApproved: {OrderStatusPrepared, OrderStatusCancelled},
	OrderStatusPrepared: {OrderStatusServed, OrderStatusCancelled},
	OrderStatusServed:   {OrderStatusBilled},
}

// CanTransition reports whether from -> to is a declared lifecycle edge.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BlockingStatuses are the order statuses that keep a dine-in table occupied.
// A table whose remaining orders are all served/cancelled/billed is released.
var BlockingStatuses = []string{OrderStatusPending, OrderStatusApproved, OrderStatusPrepared}

type Order struct {
	ID                 uint        `gorm:"primaryKey" json:"id"`
	TableNumber        *int        `json:"table_number,omitempty"`
	OrderType          string      `gorm:"type:varchar(10);not null" json:"order_type"`
	Status             string      `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	WaiterID           uint        `gorm:"not null" json:"waiter_id"`
	Items              []OrderItem `json:"items"`
	CancellationReason *string     `gorm:"type:text" json:"cancellation_reason,omitempty"`
	Timestamp          time.Time   `gorm:"autoCreateTime" json:"timestamp"`
}

// OrderItem is a priced line: the unit price is snapshotted from the menu at
// order time and never re-read from the catalog.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	OrderID    uint    `gorm:"not null;index" json:"-"`
	MenuItemID uint    `gorm:"not null" json:"menu_item_id"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	Price      float64 `gorm:"not null" json:"price"`
}

// Subtotal is the order's own total: sum of captured price x quantity.
func (o *Order) Subtotal() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}
