package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. It is
// constructed once in main and passed down; nothing else reads env vars.
type Config struct {
	Port           string
	DatabaseURL    string
	FrontendURL    string
	AllowedOrigins []string
}

// Load reads the configuration from the environment, after attempting to load
// a .env file. A missing DATABASE_URL aborts startup; everything else has a
// sensible default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		FrontendURL: getenv("FRONTEND_URL", "http://localhost:3000"),
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	cfg.AllowedOrigins = []string{cfg.FrontendURL}
	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" && origin != cfg.FrontendURL {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
