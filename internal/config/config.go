package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the runtime configuration loaded from the environment.
type Config struct {
	Port          string
	MongoURI      string
	MongoDBName   string
	JWTSecret     string
	TokenExpiry   int // hours
	AllowedOrigin string
	SeedCatalog   bool
}

// LoadConfig reads configuration from a .env file (if present) and the
// process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment variables")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:   getEnv("MONGO_DB", "ecosphere"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenExpiry:   getEnvInt("TOKEN_EXPIRY_HOURS", 72),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		SeedCatalog:   getEnvBool("SEED_CATALOG", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
