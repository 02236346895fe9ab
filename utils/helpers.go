package utils

import (
	"github.com/gin-gonic/gin"
)

func PtrString(s string) *string {
	return &s
}

func PtrInt(n int) *int {
	return &n
}

func GetUserRole(c *gin.Context) string {
	role, _ := c.Get("role")
	if role == nil {
		return ""
	}
	return role.(string)
}

func GetUserID(c *gin.Context) uint {
	value, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	id, _ := value.(uint)
	return id
}

func GetStringValue(ptr *string) string {
	if ptr != nil {
		return *ptr
	}
	return ""
}
