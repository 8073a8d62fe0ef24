package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the campus-bus-backend service. It is
// bound once at process start (spec.md §9 "single container per request" —
// no per-request handler holds static framework state).
type Config struct {
	ServerPort string

	// DatabaseURL is the MySQL DSN for IDS.
	DatabaseURL string

	// RedisURL is the COORD endpoint.
	RedisURL string

	// RabbitMQURL is the telemetry/event broker endpoint.
	RabbitMQURL string

	// Blob storage (EVID).
	S3Bucket    string
	S3Region    string
	S3Endpoint  string // optional, for S3-compatible stores

	// Token secrets, one per TOK kind.
	PassengerTokenSecret string
	OperatorTokenSecret  string
	BoardingTokenSecret  string

	// AllowedEmailDomain restricts /auth/federated.
	AllowedEmailDomain string

	Environment string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	} else {
		log.Println("loaded configuration from .env file")
	}

	cfg := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		RedisURL:             getEnv("REDIS_URL", "localhost:6379"),
		RabbitMQURL:          getEnv("RABBITMQ_URL", ""),
		S3Bucket:             getEnv("S3_BUCKET", ""),
		S3Region:             getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:           getEnv("S3_ENDPOINT", ""),
		PassengerTokenSecret: getEnv("PASSENGER_TOKEN_SECRET", ""),
		OperatorTokenSecret:  getEnv("OPERATOR_TOKEN_SECRET", ""),
		BoardingTokenSecret:  getEnv("BOARDING_TOKEN_SECRET", ""),
		AllowedEmailDomain:   getEnv("ALLOWED_EMAIL_DOMAIN", ""),
		Environment:          getEnv("ENVIRONMENT", "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.RabbitMQURL == "" {
		return fmt.Errorf("RABBITMQ_URL is required")
	}
	if c.PassengerTokenSecret == "" || c.OperatorTokenSecret == "" || c.BoardingTokenSecret == "" {
		return fmt.Errorf("PASSENGER_TOKEN_SECRET, OPERATOR_TOKEN_SECRET and BOARDING_TOKEN_SECRET are required")
	}
	if c.AllowedEmailDomain == "" {
		return fmt.Errorf("ALLOWED_EMAIL_DOMAIN is required")
	}
	if c.S3Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
