package dtos

type IngredientInput struct {
	StockItemID uint    `json:"stock_item_id" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
}

type MenuItemInput struct {
	Name        string            `json:"name" binding:"required"`
	Description *string           `json:"description,omitempty"`
	Category    string            `json:"category"`
	Price       float64           `json:"price" binding:"required,gt=0"`
	IsAvailable *bool             `json:"is_available,omitempty"`
	ImageURL    *string           `json:"image_url,omitempty"`
	Ingredients []IngredientInput `json:"ingredients,omitempty" binding:"omitempty,dive"`
}

type StockItemInput struct {
	Name               string  `json:"name" binding:"required"`
	Unit               string  `json:"unit" binding:"required"`
	QuantityInStock    float64 `json:"quantity_in_stock" binding:"min=0"`
	LowStockThreshold  float64 `json:"low_stock_threshold" binding:"min=0"`
	AverageCostPerUnit float64 `json:"average_cost_per_unit" binding:"min=0"`
}

type SupplierInput struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

type PurchaseLineInput struct {
	StockItemID uint    `json:"stock_item_id" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	CostPerUnit float64 `json:"cost_per_unit" binding:"required,gt=0"`
}

type CreatePurchaseOrderInput struct {
	SupplierID uint                `json:"supplier_id" binding:"required"`
	Items      []PurchaseLineInput `json:"items" binding:"required,min=1,dive"`
}

type UpdatePurchaseStatusInput struct {
	Status string `json:"status" binding:"required,oneof=ordered received cancelled"`
}

type UsageLogInput struct {
	StockItemID  uint    `json:"stock_item_id" binding:"required"`
	QuantityUsed float64 `json:"quantity_used" binding:"required,gt=0"`
	Category     string  `json:"category" binding:"required"`
	Notes        *string `json:"notes,omitempty"`
}

type UsageLogFilter struct {
	StockItemID uint   `form:"stock_item_id"`
	Category    string `form:"category"`
}

type OnlineOrderInput struct {
	Items []OrderLineInput `json:"items" binding:"required,min=1,dive"`
}

type ConfirmOnlineOrderInput struct {
	PaymentID string `json:"payment_id" binding:"required"`
}
