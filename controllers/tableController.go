package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetTables(c *gin.Context) {
	tables, err := tableService().List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tables)
}

func CreateTable(c *gin.Context) {
	var input struct {
		TableNumber int `json:"table_number" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := tableService().Create(input.TableNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, table)
}

func UpdateTableStatus(c *gin.Context) {
	tableNumber, err := strconv.Atoi(c.Param("tableNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table number"})
		return
	}

	var input struct {
		Status   string `json:"status" binding:"required,oneof=available occupied"`
		WaiterID *uint  `json:"waiter_id,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := tableService().SetStatus(tableNumber, input.Status, input.WaiterID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Table updated"})
}
