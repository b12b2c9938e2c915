package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment. JWT settings
// live in the auth package, which reads its own env vars.
type Config struct {
	Port   string
	DBPath string
}

// Load reads .env (if present) and the process environment, falling back to
// development defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults/environment variables")
	}

	return Config{
		Port:   getenv("PORT", "8008"),
		DBPath: getenv("DB_PATH", "challenge-tracker.db"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
