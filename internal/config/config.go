// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	EVDS     EVDSConfig
	Secrets  SecretsConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// EVDSConfig holds the TCMB EVDS sync configuration. The API key is not
// configured here: it is stored encrypted in the settings table and
// managed through the API.
type EVDSConfig struct {
	BaseURL string
	// SyncSchedule is a cron expression. The default runs shortly after
	// TCMB publishes the day's rates.
	SyncSchedule string
}

// SecretsConfig holds the encryption key for values stored in the
// settings table.
type SecretsConfig struct {
	FernetKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/taxfolio.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(
				getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost"), ","),
		},
		EVDS: EVDSConfig{
			BaseURL:      getEnv("EVDS_BASE_URL", ""),
			SyncSchedule: getEnv("EVDS_SYNC_SCHEDULE", "30 18 * * *"),
		},
		Secrets: SecretsConfig{
			FernetKey: os.Getenv("FERNET_KEY"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if config.Secrets.FernetKey == "" {
		return nil, fmt.Errorf("FERNET_KEY is required to encrypt stored credentials")
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
