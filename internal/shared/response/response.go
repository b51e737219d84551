package response

import (
	"github.com/gin-gonic/gin"
)

// Success writes the given payload with "success": true merged in,
// e.g. {"success": true, "uniqueCode": "PART-1A2B3C4D"}.
func Success(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes the uniform failure envelope {"success": false, "error": message}.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
