package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string

	AIGatewayURL string
	AIAPIKey     string
	AIModel      string

	ResendAPIKey string
	EmailFrom    string

	StorageURL    string
	StorageKey    string
	StorageBucket string

	CompanyName string
}

func Load() (*Config, error) {
	// .env is optional, the runtime may provide everything
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"), // e.g., postgres://user:pass@db:5432/recruitment
		RedisAddr:   os.Getenv("REDIS_ADDR"),   // e.g., redis:6379, optional
		JWTSecret:   os.Getenv("JWT_SECRET"),

		AIGatewayURL: getEnv("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
		AIAPIKey:     os.Getenv("AI_API_KEY"),
		AIModel:      getEnv("AI_MODEL", "google/gemini-2.5-flash"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		EmailFrom:    getEnv("EMAIL_FROM", "Pneu Forte RH <rh@pneufortenet.com.br>"),

		StorageURL:    os.Getenv("STORAGE_URL"),
		StorageKey:    os.Getenv("STORAGE_KEY"),
		StorageBucket: getEnv("STORAGE_BUCKET", "resumes"),

		CompanyName: getEnv("COMPANY_NAME", "Pneu Forte"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
