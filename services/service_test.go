package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bhinnashad-api/config"
	"bhinnashad-api/events"
	"bhinnashad-api/models"
)

var testDBCounter int64

// newTestDB opens a private in-memory SQLite database with the full schema.
// cache=shared keeps the database alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestServices(db *gorm.DB) (*OrderService, *BillingService, *TableService) {
	tables := NewTableService(db)
	billing := NewBillingService(db, tables, events.NoopPublisher{})
	orders := NewOrderService(db, tables, billing, events.NoopPublisher{})
	return orders, billing, tables
}

func seedStockItem(t *testing.T, db *gorm.DB, name string, qty, avgCost float64) models.StockItem {
	t.Helper()
	item := models.StockItem{
		Name:               name,
		Unit:               "kg",
		QuantityInStock:    qty,
		LowStockThreshold:  1,
		AverageCostPerUnit: avgCost,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed stock item: %v", err)
	}
	return item
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64, available bool, ingredients ...models.Ingredient) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:        name,
		Price:       price,
		IsAvailable: available,
		Ingredients: ingredients,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}
	return item
}

func seedTable(t *testing.T, db *gorm.DB, number int) models.Table {
	t.Helper()
	table := models.Table{TableNumber: number, Status: models.TableStatusAvailable}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("failed to seed table: %v", err)
	}
	return table
}

func seedOrder(t *testing.T, db *gorm.DB, tableNumber *int, orderType, status string, waiterID uint, items ...models.OrderItem) models.Order {
	t.Helper()
	order := models.Order{
		TableNumber: tableNumber,
		OrderType:   orderType,
		Status:      status,
		WaiterID:    waiterID,
		Items:       items,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return order
}

func tableStatus(t *testing.T, db *gorm.DB, number int) models.Table {
	t.Helper()
	var table models.Table
	if err := db.Where("table_number = ?", number).First(&table).Error; err != nil {
		t.Fatalf("failed to load table %d: %v", number, err)
	}
	return table
}

func stockQuantity(t *testing.T, db *gorm.DB, id uint) float64 {
	t.Helper()
	var item models.StockItem
	if err := db.First(&item, id).Error; err != nil {
		t.Fatalf("failed to load stock item %d: %v", id, err)
	}
	return item.QuantityInStock
}
