package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port          string
	FrontendURL   string
	UploadDir     string
	UploadBaseURL string

	RabbitMQURL   string
	RabbitMQQueue string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	ContactEmail string
}

func LoadConfig() *Config {
	return &Config{
		Port:          getEnv("PORT", "8000"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:9000"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		UploadBaseURL: getEnv("UPLOAD_BASE_URL", "/uploads"),

		RabbitMQURL:   getEnv("RABBITMQ_URL", ""),
		RabbitMQQueue: getEnv("RABBITMQ_QUEUE", "order_events"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "Gloryland <no-reply@gloryland.example>"),
		ContactEmail: getEnv("CONTACT_EMAIL", "owner@gloryland.example"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
