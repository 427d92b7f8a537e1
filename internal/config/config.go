package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const prodString = "prod"

// Config holds all server configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string
	DBDSN        string
	LogLevel     string
	LogFormat    string
}

// GatewayConfig holds configuration for the validating gateway binary.
type GatewayConfig struct {
	HTTPAddr       string
	ServerURL      string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
}

// Load loads server configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origins (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == prodString

	// HTTP listen address (default: :9090)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":9090")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	return cfg, nil
}

// LoadGateway loads gateway configuration from .env (optional) and environment variables.
func LoadGateway() (*GatewayConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &GatewayConfig{}

	// Gateway listen address (default: :8080)
	cfg.HTTPAddr = getEnv("GATEWAY_HTTP_ADDR", ":8080")

	// Upstream server base URL (default: local server)
	cfg.ServerURL = getEnv("SHAREIT_SERVER_URL", "http://localhost:9090")

	// Upstream request timeout, parsed as time.Duration (e.g. "10s").
	timeoutStr := getEnv("GATEWAY_REQUEST_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid GATEWAY_REQUEST_TIMEOUT: %w", err)
	}
	cfg.RequestTimeout = timeout

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
