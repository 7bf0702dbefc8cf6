package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DatabaseURL       string
	JWTSecret         string
	JWTExpiry         time.Duration
	PasswordMinLength int
	JanitorSchedule   string
	AuthRateLimit     float64
	AuthRateBurst     int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtExpiry := time.Hour
	if exp := os.Getenv("JWT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			jwtExpiry = parsed
		}
	}

	passwordMinLength := 6
	if n := os.Getenv("PASSWORD_MIN_LENGTH"); n != "" {
		if parsed, err := strconv.Atoi(n); err == nil && parsed > 0 {
			passwordMinLength = parsed
		}
	}

	authRateLimit := 5.0
	if lim := os.Getenv("AUTH_RATE_LIMIT"); lim != "" {
		if parsed, err := strconv.ParseFloat(lim, 64); err == nil && parsed > 0 {
			authRateLimit = parsed
		}
	}

	authRateBurst := 10
	if b := os.Getenv("AUTH_RATE_BURST"); b != "" {
		if parsed, err := strconv.Atoi(b); err == nil && parsed > 0 {
			authRateBurst = parsed
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", "host=localhost user=mtasks password=mtasks dbname=mtasks port=5432 sslmode=disable"),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiry:         jwtExpiry,
		PasswordMinLength: passwordMinLength,
		JanitorSchedule:   getEnv("JANITOR_SCHEDULE", "@every 1h"),
		AuthRateLimit:     authRateLimit,
		AuthRateBurst:     authRateBurst,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
