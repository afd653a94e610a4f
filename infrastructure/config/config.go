package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage driver names
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverDynamoDB = "dynamodb"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Storage configuration
	StorageDriver string
	StoragePath   string
	AWSRegion     string
	DynamoDBTable string

	// Use case tuning
	DealsPollInterval time.Duration
	SearchDelay       time.Duration
	SearchCacheTTL    time.Duration

	// Authentication
	SessionSecret string
	SessionIssuer string

	// Logging and features
	LogLevel   string
	EnableCORS bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		StorageDriver: getEnv("STORAGE_DRIVER", DriverMemory),
		StoragePath:   getEnv("STORAGE_PATH", "data"),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable: getEnv("DYNAMODB_TABLE", "travelbook"),

		DealsPollInterval: getEnvDuration("DEALS_POLL_INTERVAL", 5*time.Second),
		SearchDelay:       getEnvDuration("SEARCH_DELAY", time.Second),
		SearchCacheTTL:    getEnvDuration("SEARCH_CACHE_TTL", time.Minute),

		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionIssuer: getEnv("SESSION_ISSUER", "travelbook"),

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverMemory, DriverFile, DriverDynamoDB:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.StorageDriver == DriverDynamoDB && c.DynamoDBTable == "" {
		return fmt.Errorf("DYNAMODB_TABLE is required with the dynamodb driver")
	}

	if c.DealsPollInterval <= 0 {
		return fmt.Errorf("DEALS_POLL_INTERVAL must be positive")
	}

	if c.IsProduction() && c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required in production")
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvDuration gets a duration environment variable with a default
// value. Bare numbers are read as seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
