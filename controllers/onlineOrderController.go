package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bhinnashad-api/dtos"
	"bhinnashad-api/utils"
)

func CreateOnlineOrder(c *gin.Context) {
	var input dtos.OnlineOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := onlineOrderService().Create(utils.GetUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func ConfirmOnlineOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var input dtos.ConfirmOnlineOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := onlineOrderService()
	order, err := service.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	if order.UserID != utils.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := service.Confirm(uint(id), input.PaymentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Online order confirmed"})
}

func GetMyOnlineOrders(c *gin.Context) {
	orders, err := onlineOrderService().ListForUser(utils.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}
