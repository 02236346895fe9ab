package services

import (
	"time"

	"gorm.io/gorm"

	"bhinnashad-api/models"
)

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

type TopMenuItem struct {
	MenuItemID uint   `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
}

type RangeReport struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int64   `json:"total_orders"`
	CancelledOrders int64   `json:"cancelled_orders"`
	BillsPaid       int64   `json:"bills_paid"`
	BilledTotal     float64 `json:"billed_total"`
}

// Range reports revenue over [start, end]. Revenue counts served and billed
// orders; an order that was served but never billed still sold its food.
func (s *ReportService) Range(start, end time.Time) (*RangeReport, error) {
	end = end.Add(24*time.Hour - time.Nanosecond) // include the whole end day

	var orders []models.Order
	err := s.db.Preload("Items").
		Where("timestamp BETWEEN ? AND ?", start, end).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	report := RangeReport{TotalOrders: int64(len(orders))}
	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusServed, models.OrderStatusBilled:
			report.TotalRevenue += order.Subtotal()
		case models.OrderStatusCancelled:
			report.CancelledOrders++
		}
	}

	err = s.db.Model(&models.Bill{}).
		Where("status = ? AND timestamp BETWEEN ? AND ?", models.BillStatusPaid, start, end).
		Count(&report.BillsPaid).Error
	if err != nil {
		return nil, err
	}

	var billedTotal *float64
	err = s.db.Model(&models.Bill{}).
		Select("SUM(total)").
		Where("status = ? AND timestamp BETWEEN ? AND ?", models.BillStatusPaid, start, end).
		Scan(&billedTotal).Error
	if err != nil {
		return nil, err
	}
	if billedTotal != nil {
		report.BilledTotal = *billedTotal
	}

	return &report, nil
}

type Dashboard struct {
	TodayRevenue   float64       `json:"today_revenue"`
	OpenOrders     int64         `json:"open_orders"`
	OccupiedTables int64         `json:"occupied_tables"`
	LowStock       int64         `json:"low_stock"`
	TopItems       []TopMenuItem `json:"top_selling_items"`
}

func (s *ReportService) Dashboard() (*Dashboard, error) {
	dash := Dashboard{}
	todayStart := time.Now().Truncate(24 * time.Hour)

	var todayRevenue *float64
	err := s.db.Model(&models.Bill{}).
		Select("SUM(total)").
		Where("status = ? AND timestamp >= ?", models.BillStatusPaid, todayStart).
		Scan(&todayRevenue).Error
	if err != nil {
		return nil, err
	}
	if todayRevenue != nil {
		dash.TodayRevenue = *todayRevenue
	}

	if err := s.db.Model(&models.Order{}).
		Where("status IN ?", models.BlockingStatuses).
		Count(&dash.OpenOrders).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Table{}).
		Where("status = ?", models.TableStatusOccupied).
		Count(&dash.OccupiedTables).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.StockItem{}).
		Where("quantity_in_stock <= low_stock_threshold").
		Count(&dash.LowStock).Error; err != nil {
		return nil, err
	}

	var topItems []TopMenuItem
	err = s.db.Model(&models.OrderItem{}).
		Select("order_items.menu_item_id, SUM(order_items.quantity) as quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status = ?", models.OrderStatusBilled).
		Group("order_items.menu_item_id").
		Order("quantity desc").
		Limit(5).
		Scan(&topItems).Error
	if err != nil {
		return nil, err
	}

	for i, top := range topItems {
		var item models.MenuItem
		if err := s.db.First(&item, top.MenuItemID).Error; err == nil {
			topItems[i].Name = item.Name
		}
	}
	dash.TopItems = topItems

	return &dash, nil
}
