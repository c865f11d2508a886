package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Seolivier/smart-broadband-3-server/internal/config"
	"github.com/Seolivier/smart-broadband-3-server/internal/database"
	"github.com/Seolivier/smart-broadband-3-server/internal/router"
	"github.com/Seolivier/smart-broadband-3-server/pkg/utils"
)

func main() {
	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	defer db.Close()
	utils.LogInfo("Database connected")

	// A failed readiness check is logged but does not stop the server; the
	// table may already be managed externally.
	if err := database.EnsureSchema(db); err != nil {
		utils.LogError(err, "Schema readiness check failed")
	} else {
		utils.LogInfo("Clients table ready")
	}

	engine := gin.New()
	engine.Use(utils.GinLogger(), gin.Recovery())

	router.Setup(engine, db, cfg)

	utils.LogInfo("Server starting", map[string]interface{}{
		"port":         cfg.Port,
		"frontend_url": cfg.FrontendURL,
	})
	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
