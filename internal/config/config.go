package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	CORS  CORSConfig
	Data  DataConfig
	Cache CacheConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// CORSConfig lists the browser origins allowed to call the API
type CORSConfig struct {
	AllowedOrigins []string
}

// SourceConfig names one spreadsheet and the sheet to read from it
type SourceConfig struct {
	File  string
	Sheet string
}

// DataConfig locates the three dashboard sources
type DataConfig struct {
	Dir             string
	Orders          SourceConfig
	Despatch        SourceConfig
	DateIndex       SourceConfig
	RefreshInterval time.Duration // 0 disables the refresh job
}

// CacheConfig sizes the rendered view cache
type CacheConfig struct {
	ViewSize int // 0 disables memoization
}

// Load reads the environment, optionally seeded from a .env file
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
		slog.Debug("No .env file found, using environment only")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.CORS.AllowedOrigins) == 0 {
		config.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	}

	// Data sources
	refresh, err := time.ParseDuration(getEnv("REFRESH_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}

	config.Data = DataConfig{
		Dir: getEnv("DATA_DIR", "./data"),
		Orders: SourceConfig{
			File:  getEnv("ORDERS_FILE", "JUNE 2025 ORDERS CONSOLIDATED.xlsx"),
			Sheet: getEnv("ORDERS_SHEET", "Orders"),
		},
		Despatch: SourceConfig{
			File:  getEnv("DESPATCH_FILE", "2025 June Superlinx Daily Despatch Tracker.xlsx"),
			Sheet: getEnv("DESPATCH_SHEET", "Template"),
		},
		DateIndex: SourceConfig{
			File:  getEnv("DATE_INDEX_FILE", "DATE INDEX.xlsx"),
			Sheet: getEnv("DATE_INDEX_SHEET", "Sheet2"),
		},
		RefreshInterval: refresh,
	}

	viewSize, err := strconv.Atoi(getEnv("VIEW_CACHE_SIZE", "128"))
	if err != nil {
		return nil, fmt.Errorf("invalid VIEW_CACHE_SIZE: %w", err)
	}
	config.Cache = CacheConfig{ViewSize: viewSize}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if _, err := ParseLogLevel(c.App.LogLevel); err != nil {
		return err
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.Data.Orders.File == "" {
		return fmt.Errorf("ORDERS_FILE is required")
	}
	if c.Data.Despatch.File == "" {
		return fmt.Errorf("DESPATCH_FILE is required")
	}
	if c.Data.DateIndex.File == "" {
		return fmt.Errorf("DATE_INDEX_FILE is required")
	}
	if c.Data.RefreshInterval < 0 {
		return fmt.Errorf("REFRESH_INTERVAL must not be negative")
	}
	if c.Cache.ViewSize < 0 {
		return fmt.Errorf("VIEW_CACHE_SIZE must not be negative")
	}
	return nil
}

// ParseLogLevel maps LOG_LEVEL onto a slog level
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", level)
	}
	return l, nil
}

// IsProduction reports whether APP_ENV is production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
