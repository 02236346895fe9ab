package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bhinnashad-api/dtos"
)

// ===== Stock items =====

func GetStockItems(c *gin.Context) {
	items, err := stockService().ListItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateStockItem(c *gin.Context) {
	var input dtos.StockItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := stockService().CreateItem(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func UpdateStockItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var input dtos.StockItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := stockService().UpdateItem(uint(id), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteStockItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := stockService().DeleteItem(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock item deleted"})
}

// ===== Suppliers =====

func GetSuppliers(c *gin.Context) {
	suppliers, err := stockService().ListSuppliers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func CreateSupplier(c *gin.Context) {
	var input dtos.SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, err := stockService().CreateSupplier(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

func UpdateSupplier(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var input dtos.SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, err := stockService().UpdateSupplier(uint(id), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func DeleteSupplier(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := stockService().DeleteSupplier(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted"})
}

// ===== Purchase orders =====

func GetPurchaseOrders(c *gin.Context) {
	orders, err := stockService().ListPurchaseOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func CreatePurchaseOrder(c *gin.Context) {
	var input dtos.CreatePurchaseOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := stockService().CreatePurchaseOrder(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func UpdatePurchaseOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var input dtos.UpdatePurchaseStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := stockService().UpdatePurchaseStatus(uint(id), input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
