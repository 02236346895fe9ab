package seeders

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bhinnashad-api/config"
	"bhinnashad-api/models"
	"bhinnashad-api/utils"
)

func hashPassword(plain string) string {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(hashed)
}

func Seed() {
	// ============= Seed Users =============
	users := []models.User{
		{Username: "admin", Password: hashPassword("admin123"), Name: "Admin", Role: "admin"},
		{Username: "manager", Password: hashPassword("manager123"), Name: "Priya Das", Role: "manager"},
		{Username: "waiter1", Password: hashPassword("waiter123"), Name: "Arjun Sen", Role: "waiter"},
		{Username: "waiter2", Password: hashPassword("waiter123"), Name: "Rahul Bose", Role: "waiter"},
	}

	for _, user := range users {
		config.DB.FirstOrCreate(&user, models.User{Username: user.Username})
	}

	// ============= Seed Tables =============
	for number := 1; number <= 12; number++ {
		table := models.Table{TableNumber: number, Status: "available"}
		config.DB.FirstOrCreate(&table, models.Table{TableNumber: number})
	}

	// ============= Seed Stock =============
	stockItems := []models.StockItem{
		{Name: "Basmati Rice", Unit: "kg", QuantityInStock: 50, LowStockThreshold: 10, AverageCostPerUnit: 90},
		{Name: "Chicken", Unit: "kg", QuantityInStock: 30, LowStockThreshold: 5, AverageCostPerUnit: 220},
		{Name: "Paneer", Unit: "kg", QuantityInStock: 15, LowStockThreshold: 3, AverageCostPerUnit: 320},
		{Name: "Cooking Oil", Unit: "l", QuantityInStock: 40, LowStockThreshold: 8, AverageCostPerUnit: 140},
		{Name: "Masala Mix", Unit: "g", QuantityInStock: 5000, LowStockThreshold: 500, AverageCostPerUnit: 0.8},
		{Name: "Naan Flour", Unit: "kg", QuantityInStock: 25, LowStockThreshold: 5, AverageCostPerUnit: 45},
	}

	for _, item := range stockItems {
		config.DB.FirstOrCreate(&item, models.StockItem{Name: item.Name})
	}

	var rice, chicken, paneer, flour models.StockItem
	config.DB.Where("name = ?", "Basmati Rice").First(&rice)
	config.DB.Where("name = ?", "Chicken").First(&chicken)
	config.DB.Where("name = ?", "Paneer").First(&paneer)
	config.DB.Where("name = ?", "Naan Flour").First(&flour)

	// ============= Seed Menu =============
	menuItems := []models.MenuItem{
		{
			Name: "Chicken Biryani", Category: "mains", Price: 280, IsAvailable: true,
			Description: utils.PtrString("Slow-cooked basmati rice with spiced chicken"),
			Ingredients: []models.Ingredient{
				{StockItemID: rice.ID, Quantity: 0.25},
				{StockItemID: chicken.ID, Quantity: 0.2},
			},
		},
		{
			Name: "Paneer Butter Masala", Category: "mains", Price: 240, IsAvailable: true,
			Description: utils.PtrString("Cottage cheese in a tomato-butter gravy"),
			Ingredients: []models.Ingredient{
				{StockItemID: paneer.ID, Quantity: 0.2},
			},
		},
		{
			Name: "Butter Naan", Category: "breads", Price: 50, IsAvailable: true,
			Ingredients: []models.Ingredient{
				{StockItemID: flour.ID, Quantity: 0.1},
			},
		},
		{Name: "Masala Chai", Category: "beverages", Price: 30, IsAvailable: true},
		{Name: "Gulab Jamun", Category: "desserts", Price: 80, IsAvailable: true},
	}

	for _, item := range menuItems {
		config.DB.FirstOrCreate(&item, models.MenuItem{Name: item.Name})
	}

	// ============= Seed Suppliers =============
	suppliers := []models.Supplier{
		{Name: "Kolkata Fresh Produce", Phone: "+91-98300-11111"},
		{Name: "Bengal Grains Co", Phone: "+91-98300-22222"},
	}

	for _, supplier := range suppliers {
		config.DB.FirstOrCreate(&supplier, models.Supplier{Name: supplier.Name})
	}

	fmt.Println("Seeding done: 4 users, 12 tables, 6 stock items, 5 menu items, 2 suppliers")
}
