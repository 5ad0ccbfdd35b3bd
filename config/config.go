package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                string
	Port               string
	DatabaseURL        string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	BcryptCost         int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Notice: .env file not found, using system environment variables")
	}

	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "3000"),
		DatabaseURL:        mustGetEnv("DATABASE_URL"),
		AccessTokenSecret:  mustGetEnv("JWT_ACCESS_SECRET"),
		RefreshTokenSecret: mustGetEnv("JWT_REFRESH_SECRET"),
		AccessTokenExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRES_IN", time.Hour),
		RefreshTokenExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRES_IN", 168*time.Hour),
		BcryptCost:         getEnvAsInt("SALT_OR_ROUNDS", 10),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %s", key, defaultVal)
		return defaultVal
	}
	return val
}
