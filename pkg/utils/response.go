package utils

import "github.com/gin-gonic/gin"

// SuccessResponse writes a JSON body with the conventional success envelope.
func SuccessResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// ErrorResponse writes a JSON error body.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
