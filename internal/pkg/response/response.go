package response

import "github.com/gin-gonic/gin"

// Error writes the generic error body. Internal detail never goes into
// the response; callers log it instead.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
	})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
	})
}
