package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Engine
	EngineBuffer int `env:"ENGINE_BUFFER" envDefault:"1024"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.EngineBuffer < 1 {
		return nil, fmt.Errorf("ENGINE_BUFFER must be at least 1, got %d", cfg.EngineBuffer)
	}

	return cfg, nil
}
