package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every setting the process needs. It is loaded once in main
// and passed down explicitly; nothing else reads the environment.
type Config struct {
	Port    string
	GinMode string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	GoogleClientID     string
	GoogleClientSecret string

	JWTSecret     string
	JWTExpiryDays int

	GeminiAPIKey string

	FrontendURL string
}

func Load() (*Config, error) {
	// .env is a development convenience; in production the variables come
	// from the real environment.
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "debug"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", ""),
		DBName:     getenv("DB_NAME", "tracker"),
		DBPort:     getenv("DB_PORT", "5432"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),

		JWTSecret: getenv("JWT_SECRET", "dev-secret-change-in-production"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),

		FrontendURL: getenv("FRONTEND_URL", "http://localhost:5173"),
	}

	days, err := strconv.Atoi(getenv("JWT_EXPIRY_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_DAYS: %w", err)
	}
	cfg.JWTExpiryDays = days

	return cfg, nil
}

// JWTExpiry is the validity window for issued session tokens.
func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiryDays) * 24 * time.Hour
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
