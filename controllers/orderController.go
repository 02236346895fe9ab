package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bhinnashad-api/dtos"
	"bhinnashad-api/models"
	"bhinnashad-api/utils"
)

func GetOrders(c *gin.Context) {
	var filter dtos.OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Waiters only ever see their own orders.
	if utils.GetUserRole(c) == models.RoleWaiter {
		filter.WaiterID = utils.GetUserID(c)
	}

	orders, err := orderService().List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := orderService().Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	if utils.GetUserRole(c) == models.RoleWaiter && order.WaiterID != utils.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func CreateOrder(c *gin.Context) {
	var input dtos.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orderService().Create(utils.GetUserID(c), utils.GetUserRole(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func UpdateOrderItems(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var input dtos.UpdateOrderItemsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orderService().UpdateItems(uint(id), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var input dtos.UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := orderService().UpdateStatus(uint(id), input.Status, utils.GetUserRole(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{"order": result.Order}
	if result.Settlement != nil {
		response["bill"] = result.Settlement.Bill
		if len(result.Settlement.Skipped) > 0 {
			response["skipped_adjustments"] = result.Settlement.Skipped
		}
	}
	c.JSON(http.StatusOK, response)
}

func CancelOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var input dtos.CancelOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := orderService()
	order, err := service.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	if utils.GetUserRole(c) == models.RoleWaiter && order.WaiterID != utils.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	order, err = service.Cancel(uint(id), input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := orderService().Delete(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
