package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Company  CompanyConfig
	Schedule ScheduleConfig
	Export   ExportConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Env       string
	LogLevel  string
	LogFormat string
}

// CompanyConfig identifies the organisation shown on views and exports
type CompanyConfig struct {
	Name string
}

// ScheduleConfig tunes mock-data generation and the simulated creation delay
type ScheduleConfig struct {
	Seed          int64
	CreationDelay time.Duration
}

type ExportConfig struct {
	Dir string
}

func Load() (*Config, error) {
	// A missing .env is fine; the defaults below cover local runs.
	_ = godotenv.Load()

	config := &Config{}

	config.App = AppConfig{
		Env:       getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	config.Company = CompanyConfig{
		Name: getEnv("COMPANY_NAME", "RedPartners"),
	}

	// Schedule configuration
	seed, err := strconv.ParseInt(getEnv("SCHEDULE_SEED", "1"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_SEED: %w", err)
	}

	delayMS, err := strconv.Atoi(getEnv("CREATION_DELAY_MS", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid CREATION_DELAY_MS: %w", err)
	}

	config.Schedule = ScheduleConfig{
		Seed:          seed,
		CreationDelay: time.Duration(delayMS) * time.Millisecond,
	}

	config.Export = ExportConfig{
		Dir: getEnv("EXPORT_DIR", "exports"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Company.Name == "" {
		return fmt.Errorf("COMPANY_NAME is required")
	}
	if c.Schedule.CreationDelay < 0 {
		return fmt.Errorf("CREATION_DELAY_MS must not be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
