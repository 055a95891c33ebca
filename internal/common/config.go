// Package common provides shared utilities for Daybrief
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Report modes supported by the candidate source layer.
const (
	ModeIndex    = "index"
	ModeNews     = "news"
	ModeSnapshot = "snapshot"
)

// Config holds all configuration for Daybrief
type Config struct {
	Environment string        `toml:"environment"`
	Report      ReportConfig  `toml:"report"`
	Clients     ClientsConfig `toml:"clients"`
	Logging     LoggingConfig `toml:"logging"`
}

// ReportConfig holds pipeline tunables
type ReportConfig struct {
	Mode          string `toml:"mode"`            // index | news | snapshot
	MaxRows       int    `toml:"max_rows"`        // index/news truncation
	TopEachSide   int    `toml:"top_each_side"`   // snapshot gainers/losers count
	NewsLimit     int    `toml:"news_limit"`      // market-wide feed fetch size
	NewsPerTicker int    `toml:"news_per_ticker"` // per-ticker headline lookback
	OutputDir     string `toml:"output_dir"`
	Schedule      string `toml:"schedule"` // cron expression; empty = single run
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Polygon   PolygonConfig   `toml:"polygon"`
	Wikipedia WikipediaConfig `toml:"wikipedia"`
}

// PolygonConfig holds Polygon API configuration
type PolygonConfig struct {
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *PolygonConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// WikipediaConfig holds the index-constituents source configuration
type WikipediaConfig struct {
	URL     string `toml:"url"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *WikipediaConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Report: ReportConfig{
			Mode:          ModeNews,
			MaxRows:       12,
			TopEachSide:   8,
			NewsLimit:     50,
			NewsPerTicker: 2,
			OutputDir:     "docs",
		},
		Clients: ClientsConfig{
			Polygon: PolygonConfig{
				RateLimit: 10,
				Timeout:   "30s",
			},
			Wikipedia: WikipediaConfig{
				URL:     "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies",
				Timeout: "30s",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	validateMode(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("DAYBRIEF_ENV"); env != "" {
		config.Environment = env
	}

	if mode := os.Getenv("DAYBRIEF_MODE"); mode != "" {
		config.Report.Mode = strings.ToLower(mode)
	}

	if level := os.Getenv("DAYBRIEF_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if dir := os.Getenv("DAYBRIEF_OUTPUT_DIR"); dir != "" {
		config.Report.OutputDir = dir
	}

	if rows := os.Getenv("DAYBRIEF_MAX_ROWS"); rows != "" {
		if n, err := strconv.Atoi(rows); err == nil && n > 0 {
			config.Report.MaxRows = n
		}
	}
}

// ResolveAPIKey resolves an API key from the environment with a config fallback.
// The credential is required: an empty result is an error the caller treats as fatal.
func ResolveAPIKey(envNames []string, fallback string) (string, error) {
	for _, name := range envNames {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v, nil
		}
	}

	if fallback != "" {
		return fallback, nil
	}

	return "", fmt.Errorf("API key not found in environment (%s) or config", strings.Join(envNames, ", "))
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// validateMode ensures the report mode is one of the known sources,
// defaulting to the news-filtered source.
func validateMode(config *Config) {
	switch config.Report.Mode {
	case ModeIndex, ModeNews, ModeSnapshot:
	default:
		config.Report.Mode = ModeNews
	}
}
