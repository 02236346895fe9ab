package models

// StockItem units of measure.
var StockUnits = []string{"kg", "g", "l", "ml", "piece"}

// StockItem carries on-hand quantity and a weighted-average unit cost. The
// quantity has no floor: billing and usage logs may drive it negative, which
// signals over-sold or unreconciled inventory rather than being clamped away.
type StockItem struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	Name               string  `gorm:"not null" json:"name"`
	Unit               string  `gorm:"type:varchar(8);not null" json:"unit"`
	QuantityInStock    float64 `gorm:"not null" json:"quantity_in_stock"`
	LowStockThreshold  float64 `gorm:"not null" json:"low_stock_threshold"`
	AverageCostPerUnit float64 `gorm:"not null" json:"average_cost_per_unit"`
}

func ValidStockUnit(unit string) bool {
	for _, u := range StockUnits {
		if u == unit {
			return true
		}
	}
	return false
}
