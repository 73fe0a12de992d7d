package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int    `yaml:"port" env:"CR_PORT"`
	BasePath string `yaml:"base_path" env:"CR_BASE_PATH"`
	// RateLimit is the sustained number of API requests per second allowed
	// per client. Zero disables rate limiting.
	RateLimit float64 `yaml:"rate_limit" env:"CR_RATE_LIMIT"`
	RateBurst int     `yaml:"rate_burst" env:"CR_RATE_BURST"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `yaml:"path" env:"CR_DB_PATH"`
}

// CatalogConfig locates the aggregated catalog file served by the API.
type CatalogConfig struct {
	Path  string `yaml:"path" env:"CR_CATALOG_PATH"`
	Watch bool   `yaml:"watch" env:"CR_CATALOG_WATCH"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level" env:"CR_LOG_LEVEL"`
	Format     string `yaml:"format" env:"CR_LOG_FORMAT"`
	FilePath   string `yaml:"file_path" env:"CR_LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"CR_LOG_MAX_SIZE_MB"`
	MaxFiles   int    `yaml:"max_files" env:"CR_LOG_MAX_FILES"`
	MaxAgeDays int    `yaml:"max_age_days" env:"CR_LOG_MAX_AGE_DAYS"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      8080,
			BasePath:  "/",
			RateLimit: 10,
			RateBurst: 20,
		},
		Database: DatabaseConfig{
			Path: "/data/crossref.db",
		},
		Catalog: CatalogConfig{
			Path:  "/data/catalog.json",
			Watch: true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			MaxSizeMB:  10,
			MaxFiles:   5,
			MaxAgeDays: 30,
		},
	}
}

// Load reads config from a YAML file (if it exists) and overrides with
// environment variables. Environment variables take precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is an operator-supplied flag
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("invalid rate limit: %v", c.Server.RateLimit)
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
		c.Server.RateBurst = 1
	}
	if c.Database.Path == "" {
		return errors.New("database path is required")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
		c.Logging.Format = strings.ToLower(c.Logging.Format)
	default:
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}
	c.Server.BasePath = strings.TrimRight(c.Server.BasePath, "/")
	return nil
}
