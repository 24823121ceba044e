// Package config loads converter configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all converter configuration.
type Config struct {
	Logging LogConfig
	Update  UpdateConfig
	Block   BlockConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"INO2UBI_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"INO2UBI_LOG_DEV" default:"false"`
	File        string `envconfig:"INO2UBI_LOG_FILE" default:""`
}

// UpdateConfig holds the optional update-check configuration.
type UpdateConfig struct {
	URL     string        `envconfig:"INO2UBI_UPDATE_URL" default:"https://flprog-tools.github.io/ino2ubi/latest.json"`
	Enabled bool          `envconfig:"INO2UBI_UPDATE_CHECK" default:"false"`
	Timeout time.Duration `envconfig:"INO2UBI_UPDATE_TIMEOUT" default:"3s"`
}

// BlockConfig holds defaults applied to generated blocks.
type BlockConfig struct {
	Version string `envconfig:"INO2UBI_BLOCK_VERSION" default:"1.3"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or returns defaults.
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
			Level:       "info",
			Development: false,
		},
		Update: UpdateConfig{
			URL:     "https://flprog-tools.github.io/ino2ubi/latest.json",
			Enabled: false,
			Timeout: 3 * time.Second,
		},
		Block: BlockConfig{
			Version: "1.3",
		},
	}
}
