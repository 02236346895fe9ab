package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bhinnashad-api/dtos"
)

func GetMenuItems(c *gin.Context) {
	items, err := menuService().List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

func GetMenuItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := menuService().Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func CreateMenuItem(c *gin.Context) {
	var input dtos.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := menuService().Create(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func UpdateMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var input dtos.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := menuService().Update(uint(id), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func DeleteMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := menuService().Delete(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
