package dtos

import "bhinnashad-api/models"

type BillFilter struct {
	Status      string `form:"status"`
	TableNumber *int   `form:"table_number"`
}

// SkippedAdjustment is a stock depletion the settlement could not apply
// because catalog or stock data was missing. Settlement itself still
// succeeds; callers surface these as warnings.
type SkippedAdjustment struct {
	OrderID     uint   `json:"order_id"`
	MenuItemID  uint   `json:"menu_item_id"`
	StockItemID uint   `json:"stock_item_id,omitempty"`
	Reason      string `json:"reason"`
}

type SettlementResult struct {
	Bill    *models.Bill        `json:"bill"`
	Skipped []SkippedAdjustment `json:"skipped_adjustments,omitempty"`
}

type VerifyPaymentInput struct {
	BillID          uint   `json:"bill_id" binding:"required"`
	GatewayOrderID  string `json:"gateway_order_id" binding:"required"`
	PaymentID       string `json:"payment_id" binding:"required"`
	Signature       string `json:"signature" binding:"required"`
}
