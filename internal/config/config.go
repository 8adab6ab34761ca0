package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// Server
	Port        string
	FrontendURL string

	// Auction Settings
	BidHistoryLimit      int
	RecentCompletedLimit int
	TotalPurse           float64
	SquadLimit           int
	OverseasLimit        int

	// Photo Storage (DigitalOcean Spaces / S3-compatible)
	SpacesKey    string
	SpacesSecret string
	SpacesRegion string
	SpacesBucket string

	// Security
	JWTSecret         string
	SessionTimeoutMin int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/auction?sslmode=disable"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		// Auction Settings
		BidHistoryLimit:      getEnvInt("BID_HISTORY_LIMIT", 50),
		RecentCompletedLimit: getEnvInt("RECENT_COMPLETED_LIMIT", 10),
		TotalPurse:           getEnvFloat("TOTAL_PURSE_CR", 130),
		SquadLimit:           getEnvInt("SQUAD_LIMIT", 25),
		OverseasLimit:        getEnvInt("OVERSEAS_LIMIT", 8),

		// Photo Storage
		SpacesKey:    getEnv("SPACES_KEY", ""),
		SpacesSecret: getEnv("SPACES_SECRET", ""),
		SpacesRegion: getEnv("SPACES_REGION", "blr1"),
		SpacesBucket: getEnv("SPACES_BUCKET", "players"),

		// Security
		JWTSecret:         getEnv("JWT_SECRET", "change-me-in-production"),
		SessionTimeoutMin: getEnvInt("SESSION_TIMEOUT_MINUTES", 240),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
