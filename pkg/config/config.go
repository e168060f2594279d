package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	MongoURI        string
	PostgresConnStr string
	BotToken        string
	RootAdminID     string
	JWTSecret       string
	AdminAPIKey     string
}

func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		MongoURI:        getEnv("MONGO_URI", ""),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		BotToken:        getEnv("TELEGRAM_BOT_TOKEN", ""),
		RootAdminID:     getEnv("ROOT_ADMIN_ID", ""),
		JWTSecret:       getEnv("JWT_SECRET", "supersecretjwtkey"),
		AdminAPIKey:     getEnv("ADMIN_API_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
