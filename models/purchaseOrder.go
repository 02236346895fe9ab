package models

import (
	"time"
)

const (
	PurchaseStatusOrdered   = "ordered"
	PurchaseStatusReceived  = "received"
	PurchaseStatusCancelled = "cancelled"
)

type Supplier struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	Phone   string  `gorm:"not null" json:"phone"`
	Email   *string `json:"email,omitempty"`
	Address *string `gorm:"type:text" json:"address,omitempty"`
}

type PurchaseOrder struct {
	ID         uint                `gorm:"primaryKey" json:"id"`
	SupplierID uint                `gorm:"not null" json:"supplier_id"`
	Items      []PurchaseOrderItem `json:"items"`
	TotalCost  float64             `gorm:"not null" json:"total_cost"`
	Status     string              `gorm:"type:varchar(10);not null;default:'ordered'" json:"status"`
	Date       time.Time           `gorm:"autoCreateTime" json:"date"`
}

type PurchaseOrderItem struct {
	ID              uint    `gorm:"primaryKey" json:"-"`
	PurchaseOrderID uint    `gorm:"not null;index" json:"-"`
	StockItemID     uint    `gorm:"not null" json:"stock_item_id"`
	Quantity        float64 `gorm:"not null" json:"quantity"`
	CostPerUnit     float64 `gorm:"not null" json:"cost_per_unit"`
}
