// File: /config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            string
	GRPCPort        string
	DatabaseURL     string
	JWTSecret       string
	AnthropicAPIKey string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	return &Config{
		Port:            getEnv("PORT", "8080"),
		GRPCPort:        getEnv("GRPC_PORT", "50051"),
		DatabaseURL:     getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/carbontrack?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key"),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@carbontrack.app"),
		FromName:     getEnv("FROM_NAME", "CarbonTrack"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
