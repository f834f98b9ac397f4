package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds all configuration for the quote server.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Render RenderConfig `yaml:"render"`
	Quote  QuoteConfig  `yaml:"quote"`
	Assets AssetsConfig `yaml:"assets"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig defines HTTP listener options.
type ServerConfig struct {
	Addr string `yaml:"addr"` // Listen address, e.g. ":4000"
}

// RenderConfig defines render pipeline options.
type RenderConfig struct {
	Workers int    `yaml:"workers"` // Browser pool size (0 = auto)
	Timeout string `yaml:"timeout"` // Per-render timeout, e.g. "30s"
}

// QuoteConfig defines document presentation options.
type QuoteConfig struct {
	CurrencySymbol  string `yaml:"currencySymbol"`  // Prefix for amounts (default "₹")
	DateFormat      string `yaml:"dateFormat"`      // Go time layout (default "02/01/2006")
	LogoFallbackURL string `yaml:"logoFallbackURL"` // Used when logo.png is missing
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Dir with template.html/logo.png (empty = embedded template)
}

// LogConfig defines logging options.
type LogConfig struct {
	Level  string `yaml:"level"`  // zerolog level (default "info")
	Format string `yaml:"format"` // "json" or "console"
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":4000"},
		Render: RenderConfig{Workers: 0, Timeout: "30s"},
		Quote:  QuoteConfig{},
		Assets: AssetsConfig{BasePath: ""},
		Log:    LogConfig{Level: "info", Format: "json"},
	}
}

// LoadConfig loads configuration from a YAML file, starting from defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}

// ApplyEnv overrides config fields from QUOTEGEN_* environment variables.
// Environment wins over the file; flags win over both (applied in main).
func (c *Config) ApplyEnv() {
	setString(&c.Server.Addr, "QUOTEGEN_ADDR")
	setInt(&c.Render.Workers, "QUOTEGEN_WORKERS")
	setString(&c.Render.Timeout, "QUOTEGEN_RENDER_TIMEOUT")
	setString(&c.Quote.CurrencySymbol, "QUOTEGEN_CURRENCY_SYMBOL")
	setString(&c.Quote.DateFormat, "QUOTEGEN_DATE_FORMAT")
	setString(&c.Quote.LogoFallbackURL, "QUOTEGEN_LOGO_FALLBACK_URL")
	setString(&c.Assets.BasePath, "QUOTEGEN_ASSETS_DIR")
	setString(&c.Log.Level, "QUOTEGEN_LOG_LEVEL")
	setString(&c.Log.Format, "QUOTEGEN_LOG_FORMAT")
}

// RenderTimeout parses the configured render timeout, falling back to the
// default on empty or malformed values.
func (c *Config) RenderTimeout() time.Duration {
	d, err := time.ParseDuration(c.Render.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
