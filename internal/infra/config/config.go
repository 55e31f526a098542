package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	DatabaseURL       string
	PushGatewayURL    string
	PushGatewayAPIKey string
	CronSpecTick      string
	RunTimeout        time.Duration
	Timezone          string // reference zone for civil-date arithmetic and run slots
	UserWorkers       int
	LogLevel          string
	Environment       string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.PushGatewayURL = os.Getenv("PUSH_GATEWAY_URL")
	if cfg.PushGatewayURL == "" {
		return nil, fmt.Errorf("PUSH_GATEWAY_URL is not set")
	}

	cfg.PushGatewayAPIKey = os.Getenv("PUSH_GATEWAY_API_KEY")

	cfg.CronSpecTick = os.Getenv("CRON_SPEC_TICK")
	if cfg.CronSpecTick == "" {
		cfg.CronSpecTick = "* * * * *" // Default: every minute, matching HH:MM slot granularity
	}

	runTimeoutStr := os.Getenv("RUN_TIMEOUT_SECONDS")
	if runTimeoutStr == "" {
		cfg.RunTimeout = 120 * time.Second
	} else {
		seconds, err := strconv.Atoi(runTimeoutStr)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid RUN_TIMEOUT_SECONDS: %q", runTimeoutStr)
		}
		cfg.RunTimeout = time.Duration(seconds) * time.Second
	}

	cfg.Timezone = os.Getenv("TIMEZONE")
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	workersStr := os.Getenv("USER_WORKERS")
	if workersStr == "" {
		cfg.UserWorkers = 4
	} else {
		workers, err := strconv.Atoi(workersStr)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("invalid USER_WORKERS: %q", workersStr)
		}
		cfg.UserWorkers = workers
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

// Location returns the configured reference time zone.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
