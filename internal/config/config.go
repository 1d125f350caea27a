package config

import (
	"os"
	"strconv"
	"time"

	"volair/internal/auth"
	"volair/internal/messaging"
)

// Config holds the application configuration
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	Auth auth.Config
	NATS messaging.Config
}

// Load reads the configuration from environment variables
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "3000"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		Auth: auth.Config{
			// Fallback secret mirrors the long-standing dev default;
			// always override it outside local runs.
			JWTSecret:  getEnv("JWT_SECRET", "volair_dev_jwt_secret"),
			TokenTTL:   time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
			BcryptCost: getEnvInt("BCRYPT_COST", 10),
		},

		NATS: messaging.Config{
			// Empty URL disables event publishing entirely
			URL:       getEnv("NATS_URL", ""),
			ClusterID: getEnv("NATS_CLUSTER_ID", "volair"),
			ClientID:  getEnv("NATS_CLIENT_ID", "volair-api"),
		},
	}
}

// getEnv returns the value of an environment variable or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
