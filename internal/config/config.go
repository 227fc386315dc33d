package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Environment string
	Database    DatabaseConfig
	Admin       AdminConfig
	Storage     StorageConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	RateLimit   RateLimitConfig
	Server      ServerConfig
}

// DatabaseConfig holds database connection settings.
// The public credentials belong to a read-only role used by the public pages;
// they default to the service credentials when unset.
type DatabaseConfig struct {
	Host           string
	Username       string
	Password       string
	Name           string
	PublicUsername string
	PublicPassword string
	SSLMode        string
}

// AdminConfig holds the single-admin secrets
type AdminConfig struct {
	Password     string
	PasswordHash string
	IPHashSecret string
}

// StorageConfig holds the S3-compatible object store settings for background images
type StorageConfig struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds script lifecycle event streaming configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// RateLimitConfig holds per-client request budgets for the public endpoints
type RateLimitConfig struct {
	AnalyticsRPM int
	LoginRPM     int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string

	// TrustedProxies lists the proxy IPs or CIDRs whose X-Forwarded-For
	// header is honoured when resolving the client IP. Empty trusts none.
	TrustedProxies []string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the current process environment
func FromEnv() (*Config, error) {
	cfg := &Config{Environment: getEnvWithDefault("GO_ENV", "development")}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	cfg.Database.PublicUsername = getEnvWithDefault("DB_PUBLIC_USERNAME", cfg.Database.Username)
	cfg.Database.PublicPassword = getEnvWithDefault("DB_PUBLIC_PASSWORD", cfg.Database.Password)
	cfg.Database.SSLMode = getEnvWithDefault("DB_SSLMODE", "disable")

	// Admin configuration
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")
	cfg.Admin.PasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	if cfg.Admin.Password == "" && cfg.Admin.PasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is not set: %w", ErrEmptyEnvironmentVariable)
	}
	if cfg.Admin.IPHashSecret, err = requireEnv("ADMIN_SECRET"); err != nil {
		return nil, err
	}

	// Object storage configuration
	cfg.Storage.Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.Storage.Region = getEnvWithDefault("S3_REGION", "us-east-1")
	cfg.Storage.Bucket = getEnvWithDefault("S3_BUCKET", "backgrounds")
	cfg.Storage.AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
	cfg.Storage.SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")
	cfg.Storage.PublicBaseURL = strings.TrimRight(os.Getenv("S3_PUBLIC_BASE_URL"), "/")

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = getIntEnv("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getIntEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}

	// Kafka configuration
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "script-events")

	// Rate limit configuration
	if cfg.RateLimit.AnalyticsRPM, err = getIntEnv("RATE_LIMIT_ANALYTICS_RPM", 120); err != nil {
		return nil, err
	}
	if cfg.RateLimit.LoginRPM, err = getIntEnv("RATE_LIMIT_LOGIN_RPM", 10); err != nil {
		return nil, err
	}

	// Server configuration
	if cfg.Server.Port, err = getIntEnv("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")
	cfg.Server.TrustedProxies = splitList(os.Getenv("TRUSTED_PROXIES"))

	return cfg, nil
}

// IsProduction reports whether the service runs with GO_ENV=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ConnectionString returns the PostgreSQL connection string for the service role
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}

// PublicConnectionString returns the PostgreSQL connection string for the read-only role
func (c *DatabaseConfig) PublicConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.PublicUsername, c.PublicPassword, c.Host, c.Name, c.SSLMode)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// splitList parses a comma separated list, dropping blank entries
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}
