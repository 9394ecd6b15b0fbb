package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort         string
	BackendAPIURL   string
	BackendAPIToken string
	HTTPTimeout     time.Duration
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:         getEnv("APP_PORT", "8080"),
		BackendAPIURL:   getEnv("BACKEND_API_URL", ""),
		BackendAPIToken: getEnv("BACKEND_API_TOKEN", ""),
		HTTPTimeout:     getEnvDuration("HTTP_TIMEOUT_SECONDS", 15) * time.Second,
	}

	if cfg.AppPort == "" {
		log.Fatal("APP_PORT must be set")
	}

	if cfg.BackendAPIURL == "" {
		log.Fatal("BACKEND_API_URL must be set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return time.Duration(parsed)
		}
	}
	return time.Duration(fallback)
}
