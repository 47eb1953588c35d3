package response

import "github.com/gin-gonic/gin"

// OK writes {"success":true} merged with the given payload fields at the top
// level, matching the API envelope consumed by the web clients
// (e.g. {"success":true,"categories":[...]}).
func OK(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Message writes a bare success envelope with a human-readable message.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
	})
}

// Error writes {"success":false,"message":...}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

// ErrorWithDetails attaches field-level details to an error envelope.
func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
		"details": details,
	})
}
