package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bhinnashad-api/config"
	"bhinnashad-api/dtos"
	"bhinnashad-api/services"
)

func Login(c *gin.Context) {
	var input dtos.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := services.NewAuthService(config.DB)
	response, err := service.Login(input)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

func GetUsers(c *gin.Context) {
	service := services.NewAuthService(config.DB)
	users, err := service.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}
