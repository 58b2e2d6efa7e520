package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken     string
	DBPath       string
	GeoBaseURL   string
	GeoUserAgent string
	GeoLanguages string
	GeoTimeout   time.Duration
	WebBaseURL   string
}

// LoadConfig reads configuration from the environment. BOT_TOKEN is only
// needed in interactive mode, so its presence is checked by the caller.
func LoadConfig() Config {
	// .env is optional; in production everything comes from the real env
	_ = godotenv.Load()

	return Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		DBPath:       getEnv("DB_PATH", "./bot.db"),
		GeoBaseURL:   getEnv("GEO_BASE_URL", "https://nominatim.openstreetmap.org/reverse"),
		GeoUserAgent: getEnv("GEO_USER_AGENT", "TelegramFoodBot/1.0 (contact: you@example.com)"),
		GeoLanguages: getEnv("GEO_LANGUAGES", "fa,en"),
		GeoTimeout:   getEnvDuration("GEO_TIMEOUT", 10*time.Second),
		WebBaseURL:   getEnv("WEB_BASE_URL", "https://snappfood.ir"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
