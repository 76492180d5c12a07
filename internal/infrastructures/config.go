package infrastructures

import (
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port                string
	DatabaseURL         string
	RedisAddress        string
	RedisPassword       string
	AdminAPIKey         string
	BaseURL             string
	MidtransServerKey   string
	MidtransEnvironment string // "sandbox" or "production"
}

// LoadConfig reads the environment once at process start and returns an
// explicit config struct. Constructors receive this struct instead of reading
// the environment themselves.
func LoadConfig() *AppConfig {
	godotenv.Load()

	return &AppConfig{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisAddress:        os.Getenv("REDIS_ADDRESS"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		AdminAPIKey:         os.Getenv("ADMIN_API_KEY"),
		BaseURL:             getEnv("APP_BASE_URL", "http://localhost:8080"),
		MidtransServerKey:   os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransEnvironment: getEnv("MIDTRANS_ENVIRONMENT", "sandbox"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
