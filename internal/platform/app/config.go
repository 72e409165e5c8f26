package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: ./creamery.db)

	JWTSecret string // Required: HS256 secret shared with the auth provider
	JWTIssuer string // Optional: expected issuer claim (default: creamery-auth)

	AppBaseURL   string // Optional: public base URL used in invitation links (default: http://localhost:8080)
	ResendAPIKey string // Optional: Resend API key; invitations log instead of send when unset
	FromEmail    string // Optional: invitation sender address (default: noreply@creamery.local)
	NominatimURL string // Optional: Nominatim base URL (default: public endpoint)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	// Best effort, env vars win over .env entries.
	_ = godotenv.Load()

	return Config{
		DatabaseFile: getEnvOrDefault("PLATFORM_DATABASE_FILE", "creamery.db"),

		JWTSecret: os.Getenv("PLATFORM_JWT_SECRET"),
		JWTIssuer: getEnvOrDefault("PLATFORM_JWT_ISSUER", "creamery-auth"),

		AppBaseURL:   getEnvOrDefault("PLATFORM_APP_BASE_URL", "http://localhost:8080"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		FromEmail:    getEnvOrDefault("PLATFORM_FROM_EMAIL", "noreply@creamery.local"),
		NominatimURL: os.Getenv("PLATFORM_NOMINATIM_URL"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
