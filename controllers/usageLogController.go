package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bhinnashad-api/dtos"
	"bhinnashad-api/utils"
)

func GetUsageLogs(c *gin.Context) {
	var filter dtos.UsageLogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logs, err := stockService().ListUsageLogs(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

func RecordUsage(c *gin.Context) {
	var input dtos.UsageLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := stockService().RecordUsage(input, utils.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}
