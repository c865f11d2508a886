package utils

import "github.com/gin-gonic/gin"

// RespondWithError sends the standard JSON error body. Every failure response
// of the API has the shape {"error": "<message>"}; status is 403, 404 or 500.
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": message})
}
