package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bhinnashad-api/dtos"
)

func GetBills(c *gin.Context) {
	var filter dtos.BillFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bills, err := billingService().List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bills)
}

func GetBillByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	bill, err := billingService().Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bill)
}

func CreateBillForTable(c *gin.Context) {
	tableNumber, err := strconv.Atoi(c.Param("tableNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table number"})
		return
	}

	bill, err := billingService().CreateBillForTable(tableNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bill)
}

// PayBill is the single settlement entry point. Both manual cash
// confirmation and the verified gateway callback land here.
func PayBill(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	result, err := billingService().SettleBill(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{"bill": result.Bill}
	if len(result.Skipped) > 0 {
		response["skipped_adjustments"] = result.Skipped
	}
	c.JSON(http.StatusOK, response)
}
