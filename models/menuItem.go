package models

type MenuItem struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Description *string      `gorm:"type:text" json:"description,omitempty"`
	Category    string       `gorm:"type:varchar(30)" json:"category"`
	Price       float64      `gorm:"not null" json:"price"`
	IsAvailable bool         `gorm:"not null;default:true" json:"is_available"`
	CostOfGoods float64      `gorm:"not null;default:0" json:"cost_of_goods"`
	ImageURL    *string      `json:"image_url,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Ingredient is one line of a menu item's bill-of-materials: how much of a
// stock item one sold unit consumes. Settlement depletes stock through these.
type Ingredient struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	MenuItemID  uint    `gorm:"not null;index" json:"-"`
	StockItemID uint    `gorm:"not null" json:"stock_item_id"`
	Quantity    float64 `gorm:"not null" json:"quantity"`
}
