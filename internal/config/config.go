package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all calculator configuration.
type Config struct {
	Logging LogConfig     `toml:"logging"`
	Display DisplayConfig `toml:"display"`
	Engine  EngineConfig  `toml:"engine"`
	Metrics MetricsConfig `toml:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"CALC_LOG_LEVEL" toml:"level"`
	Development bool   `envconfig:"CALC_LOG_DEV" toml:"development"`
}

// DisplayConfig holds presentation settings for the REPL.
type DisplayConfig struct {
	// HistoryLimit caps how many records :history shows; 0 shows all.
	HistoryLimit  int    `envconfig:"CALC_HISTORY_LIMIT" toml:"history_limit"`
	Output        string `envconfig:"CALC_OUTPUT" toml:"output"`
	MemoryFlashMS int    `envconfig:"CALC_MEMORY_FLASH_MS" toml:"memory_flash_ms"`
}

// EngineConfig selects engine capabilities.
type EngineConfig struct {
	Scientific bool `envconfig:"CALC_SCIENTIFIC" toml:"scientific"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool `envconfig:"CALC_METRICS" toml:"enabled"`
}

// Output formats understood by the renderer.
var outputs = map[string]bool{"text": true, "json": true, "yaml": true}

// Load loads configuration from environment variables on top of Default.
func Load() (*Config, error) {
	cfg := Default()
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a TOML file, then applies environment overrides.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
		Display: DisplayConfig{
			HistoryLimit:  20,
			Output:        "text",
			MemoryFlashMS: 1000,
		},
		Engine: EngineConfig{
			Scientific: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Display.HistoryLimit < 0 {
		return fmt.Errorf("invalid config: history_limit must be >= 0, got %d", c.Display.HistoryLimit)
	}
	if !outputs[c.Display.Output] {
		return fmt.Errorf("invalid config: unknown output %q", c.Display.Output)
	}
	if c.Display.MemoryFlashMS < 0 {
		return fmt.Errorf("invalid config: memory_flash_ms must be >= 0, got %d", c.Display.MemoryFlashMS)
	}
	return nil
}

// MemoryFlash is how long the REPL shows "M=<value>" after a memory update.
func (d DisplayConfig) MemoryFlash() time.Duration {
	return time.Duration(d.MemoryFlashMS) * time.Millisecond
}
