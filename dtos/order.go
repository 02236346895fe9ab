package dtos

type OrderLineInput struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderInput struct {
	OrderType   string           `json:"order_type" binding:"required,oneof=dine-in pickup"`
	TableNumber *int             `json:"table_number,omitempty"`
	Items       []OrderLineInput `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderItemsInput struct {
	Items []OrderLineInput `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type CancelOrderInput struct {
	Reason string `json:"reason" binding:"required"`
}

type OrderFilter struct {
	Status      string `form:"status"`
	WaiterID    uint   `form:"waiter_id"`
	TableNumber *int   `form:"table_number"`
	OrderType   string `form:"order_type"`
}
