package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// ServerConfig holds the HTTP server settings, loaded from the environment.
type ServerConfig struct {
	AppPort    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

// LoadServerConfig reads the server configuration from a .env file and the
// process environment, with defaults for local development.
func LoadServerConfig() *ServerConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	return &ServerConfig{
		AppPort:    envOr("APP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "solarcalc"),
		DBPassword: envOr("DB_PASSWORD", "solarcalc"),
		DBName:     envOr("DB_NAME", "solarcalc"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
