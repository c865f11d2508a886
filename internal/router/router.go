package router

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Seolivier/smart-broadband-3-server/internal/config"
	"github.com/Seolivier/smart-broadband-3-server/internal/handlers"
	"github.com/Seolivier/smart-broadband-3-server/internal/middleware"
	"github.com/Seolivier/smart-broadband-3-server/internal/repositories"
	"github.com/Seolivier/smart-broadband-3-server/internal/services"
)

// Setup wires the repository, service and handlers onto the engine.
// The origin gate runs before the CORS layer so a disallowed origin gets the
// JSON rejection body; gin-contrib/cors then handles preflight and response
// headers for the origins that passed.
func Setup(engine *gin.Engine, db *sql.DB, cfg *config.Config) {
	engine.Use(middleware.OriginGate(cfg.AllowedOrigins))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	clientRepo := repositories.NewClientRepository(db)
	clientService := services.NewClientService(clientRepo)
	clientHandler := handlers.NewClientHandler(clientService)

	api := engine.Group("/api")
	api.GET("/health", handlers.HealthCheck)
	SetupClientRoutes(api, clientHandler)
}
