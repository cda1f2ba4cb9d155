package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string

	// Redis (optional; empty disables the report-context cache)
	RedisURL string

	// LLM vendors. Provider is "gemini" or "groq"; when empty the first
	// vendor with a key wins. With no key at all the chat endpoint returns
	// configuration guidance instead of calling a model.
	LLMProvider  string
	GeminiAPIKey string
	GeminiModel  string
	GroqAPIKey   string
	GroqModel    string

	// Auth (optional; empty leaves the API open)
	JWTSecret string

	// Frontend
	FrontendURL string

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port:         getEnvOrDefault("PORT", "8080"),
		Env:          getEnvOrDefault("ENV", "development"),
		DatabaseURL:  mustGetEnv("DATABASE_URL"),
		RedisURL:     getEnvOrDefault("REDIS_URL", ""),
		LLMProvider:  getEnvOrDefault("LLM_PROVIDER", ""),
		GeminiAPIKey: getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", ""),
		GroqAPIKey:   getEnvOrDefault("GROQ_API_KEY", ""),
		GroqModel:    getEnvOrDefault("GROQ_MODEL", ""),
		JWTSecret:    getEnvOrDefault("JWT_SECRET", ""),
		FrontendURL:  getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:    getEnvOrDefault("LOG_FORMAT", "text"),
		LogFile:      getEnvOrDefault("LOG_FILE", ""),
	}
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
