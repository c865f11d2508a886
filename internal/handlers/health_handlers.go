package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports availability. It never touches storage.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Server is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
