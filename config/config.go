package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite"
)

// Config holds every runtime setting of the server and the CLI.
type Config struct {
	DatabaseDriver   string
	DatabaseURL      string
	DBConnectTimeout time.Duration
	DBMaxOpenConns   int
	ServerPort       int

	CORSAllowedOrigins []string
	RateLimitRequests  int
	RateLimitWindow    time.Duration

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads the configuration from environment variables.
// A .env file is loaded first when present; its absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	driver := strings.ToLower(envOr("DB_DRIVER", DriverPostgres))
	switch driver {
	case DriverPostgres, DriverPgx, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (expected %s, %s or %s)", driver, DriverPostgres, DriverPgx, DriverSQLite)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	port, err := envInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	timeoutSeconds, err := envInt("DB_CONNECT_TIMEOUT_SECONDS", 5)
	if err != nil {
		return nil, err
	}
	maxOpen, err := envInt("DB_MAX_OPEN_CONNS", 25)
	if err != nil {
		return nil, err
	}
	rateRequests, err := envInt("RATE_LIMIT_REQUESTS", 60)
	if err != nil {
		return nil, err
	}
	rateWindow, err := envInt("RATE_LIMIT_WINDOW_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	if rateWindow <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW_SECONDS must be positive, got %d", rateWindow)
	}

	cfg := &Config{
		DatabaseDriver:     driver,
		DatabaseURL:        dbURL,
		DBConnectTimeout:   time.Duration(timeoutSeconds) * time.Second,
		DBMaxOpenConns:     maxOpen,
		ServerPort:         port,
		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RateLimitRequests:  rateRequests,
		RateLimitWindow:    time.Duration(rateWindow) * time.Second,
		R2AccountID:        os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:      os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:  os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:       os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:    os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	if err := cfg.validateR2(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ExportEnabled reports whether snapshot export to R2 is configured.
func (c *Config) ExportEnabled() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" &&
		c.R2BucketName != "" && c.R2PublicBaseURL != ""
}

func (c *Config) validateR2() error {
	set := 0
	for _, v := range []string{c.R2AccountID, c.R2AccessKeyID, c.R2SecretAccessKey, c.R2BucketName, c.R2PublicBaseURL} {
		if v != "" {
			set++
		}
	}
	if set != 0 && set != 5 {
		return fmt.Errorf("R2 export requires R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_BUCKET_NAME and R2_PUBLIC_BASE_URL together (%d of 5 set)", set)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return n, nil
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return fallback
	}
	return result
}
