package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  []string
	HTTPAddr     string
	LogLevel     string

	DBDSN string

	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int

	AdminPasswordHash string
	AdminPassword     string

	BusinessLocation *time.Location

	RedisAddr          string
	RedisPassword      string
	RateLimitPerMinute int

	OTELEnabled      bool
	OTELEndpoint     string
	OTELSamplingRate float64
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := loadServer()
	if err != nil {
		return nil, err
	}

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// JWT secret is required for signing admin tokens
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	if cfg.AdminPasswordHash == "" && cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD is required")
	}

	// CORS in production only allows listed origins
	if cfg.IsProduction && len(cfg.ProdOrigins) == 0 {
		return nil, fmt.Errorf("PROD_ORIGINS is required when APP_ENV=%s", PROD_STRING)
	}

	return cfg, nil
}

// LoadDatabase loads only what commands that talk to the database need.
func LoadDatabase() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := loadServer()
	if err != nil {
		return nil, err
	}
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}
	return cfg, nil
}

// loadServer reads every setting that has a default.
func loadServer() (*Config, error) {
	cfg := &Config{}
	var err error

	// Application environment (default: dev)
	cfg.IsProduction = getEnv("APP_ENV", "dev") == PROD_STRING
	cfg.ProdOrigins = splitList(getEnv("PROD_ORIGINS", ""))
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	// HTTP listen address. PORT alone is honoured for hosted platforms.
	cfg.HTTPAddr = getEnv("HTTP_ADDR", "")
	if cfg.HTTPAddr == "" {
		if port := getEnv("PORT", ""); port != "" {
			cfg.HTTPAddr = ":" + port
		} else {
			cfg.HTTPAddr = ":8080"
		}
	}

	// JWT access token TTL, parse as time.Duration (e.g. "15m", "1h").
	cfg.JWTAccessTokenTTL, err = getEnvAsDuration("JWT_ACCESS_TOKEN_TTL", 12*time.Hour)
	if err != nil {
		return nil, err
	}

	// Bcrypt cost for password hashing (default: 12)
	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	tz := getEnv("BUSINESS_TIMEZONE", "Africa/Lagos")
	cfg.BusinessLocation, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_TIMEZONE %q: %w", tz, err)
	}

	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RateLimitPerMinute, err = getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %w", err)
	}

	cfg.OTELEnabled = getEnv("OTEL_ENABLED", "false") == "true"
	cfg.OTELEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	cfg.OTELSamplingRate, err = strconv.ParseFloat(getEnv("OTEL_SAMPLING_RATIO", "1"), 64)
	if err != nil || cfg.OTELSamplingRate < 0 || cfg.OTELSamplingRate > 1 {
		return nil, fmt.Errorf("invalid OTEL_SAMPLING_RATIO: must be within 0..1")
	}

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

// getEnvAsInt retrieves an environment variable as an integer.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}
	return val, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
