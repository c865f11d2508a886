package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Seolivier/smart-broadband-3-server/internal/handlers"
)

// SetupClientRoutes sets up the client CRUD routes.
func SetupClientRoutes(apiGroup *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clientRoutes := apiGroup.Group("/clients")
	{
		clientRoutes.GET("", clientHandler.GetClients)
		clientRoutes.GET("/:id", clientHandler.GetClientByID)
		clientRoutes.POST("", clientHandler.CreateClient)
		clientRoutes.PUT("/:id", clientHandler.UpdateClient)
		clientRoutes.DELETE("/:id", clientHandler.DeleteClient)
	}
}
