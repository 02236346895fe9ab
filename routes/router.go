package routes

import (
	"bhinnashad-api/controllers"
	"bhinnashad-api/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {

	r.POST("/login", controllers.Login)

	// Public menu for the customer-facing pages
	r.GET("/public/menu", controllers.GetMenuItems)
	r.GET("/public/menu/:id", controllers.GetMenuItemByID)

	// Orders
	orders := r.Group("/orders")
	orders.Use(middlewares.AuthMiddleware())
	{
		orders.GET("/", controllers.GetOrders)
		orders.GET("/:id", controllers.GetOrderByID)
		orders.POST("/", middlewares.RoleMiddleware("waiter", "manager", "admin"), controllers.CreateOrder)
		orders.PUT("/:id/items", middlewares.RoleMiddleware("waiter", "manager", "admin"), controllers.UpdateOrderItems)
		orders.PATCH("/:id/status", middlewares.RoleMiddleware("waiter", "manager", "admin"), controllers.UpdateOrderStatus)
		orders.POST("/:id/cancel", controllers.CancelOrder)
		orders.DELETE("/:id", middlewares.RoleMiddleware("waiter", "manager", "admin"), controllers.DeleteOrder)
	}

	// Bills
	bills := r.Group("/bills")
	bills.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("waiter", "manager", "admin"))
	{
		bills.GET("/", controllers.GetBills)
		bills.GET("/:id", controllers.GetBillByID)
		bills.POST("/table/:tableNumber", controllers.CreateBillForTable)
		bills.PATCH("/:id/pay", controllers.PayBill)
	}

	// Tables
	tables := r.Group("/tables")
	tables.Use(middlewares.AuthMiddleware())
	{
		tables.GET("/", controllers.GetTables)
		tables.POST("/", middlewares.RoleMiddleware("admin"), controllers.CreateTable)
		tables.PATCH("/:tableNumber/status", middlewares.RoleMiddleware("waiter", "manager", "admin"), controllers.UpdateTableStatus)
	}

	// Menu management
	menu := r.Group("/menu")
	menu.Use(middlewares.AuthMiddleware())
	{
		menu.GET("/", controllers.GetMenuItems)
		menu.GET("/:id", controllers.GetMenuItemByID)
		menu.POST("/", middlewares.RoleMiddleware("admin", "manager"), controllers.CreateMenuItem)
		menu.PUT("/:id", middlewares.RoleMiddleware("admin", "manager"), controllers.UpdateMenuItem)
		menu.DELETE("/:id", middlewares.RoleMiddleware("admin"), controllers.DeleteMenuItem)
	}

	// Stock, suppliers, procurement
	stock := r.Group("/stock")
	stock.Use(middlewares.AuthMiddleware())
	{
		stock.GET("/items", controllers.GetStockItems)
		stock.POST("/items", middlewares.RoleMiddleware("admin", "manager"), controllers.CreateStockItem)
		stock.PUT("/items/:id", middlewares.RoleMiddleware("admin", "manager"), controllers.UpdateStockItem)
		stock.DELETE("/items/:id", middlewares.RoleMiddleware("admin"), controllers.DeleteStockItem)

		stock.GET("/suppliers", controllers.GetSuppliers)
		stock.POST("/suppliers", middlewares.RoleMiddleware("admin", "manager"), controllers.CreateSupplier)
		stock.PUT("/suppliers/:id", middlewares.RoleMiddleware("admin", "manager"), controllers.UpdateSupplier)
		stock.DELETE("/suppliers/:id", middlewares.RoleMiddleware("admin"), controllers.DeleteSupplier)

		stock.GET("/purchase-orders", middlewares.RoleMiddleware("admin", "manager"), controllers.GetPurchaseOrders)
		stock.POST("/purchase-orders", middlewares.RoleMiddleware("admin", "manager"), controllers.CreatePurchaseOrder)
		stock.PATCH("/purchase-orders/:id/status", middlewares.RoleMiddleware("admin", "manager"), controllers.UpdatePurchaseOrderStatus)

		stock.GET("/usage-logs", middlewares.RoleMiddleware("admin", "manager"), controllers.GetUsageLogs)
		stock.POST("/usage-logs", middlewares.RoleMiddleware("admin", "manager"), controllers.RecordUsage)
	}

	// Online ordering (customer accounts)
	online := r.Group("/online-orders")
	online.Use(middlewares.AuthMiddleware())
	{
		online.POST("/", controllers.CreateOnlineOrder)
		online.POST("/:id/confirm", controllers.ConfirmOnlineOrder)
		online.GET("/mine", controllers.GetMyOnlineOrders)
	}

	// Payment gateway callback
	payments := r.Group("/payments")
	payments.Use(middlewares.AuthMiddleware())
	{
		payments.POST("/verify", controllers.VerifyPayment)
	}

	// Reports (admin/manager only)
	reports := r.Group("/reports")
	reports.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin", "manager"))
	{
		reports.GET("/", controllers.GetReport)
		reports.GET("/dashboard", controllers.GetDashboard)
	}

	// Users (admin only)
	users := r.Group("/users")
	users.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin"))
	{
		users.GET("/", controllers.GetUsers)
	}
}
