package config_test

import (
	"testing"

	"github.com/sergiupopescu199/payment-engine/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("ENGINE_BUFFER", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}

	if cfg.LogFormat != "console" {
		t.Fatalf("expected default log format console, got %q", cfg.LogFormat)
	}

	if cfg.EngineBuffer != 1024 {
		t.Fatalf("expected default engine buffer 1024, got %d", cfg.EngineBuffer)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("ENGINE_BUFFER", "64")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level override, got %q", cfg.LogLevel)
	}

	if cfg.LogFormat != "json" {
		t.Fatalf("expected log format override, got %q", cfg.LogFormat)
	}

	if cfg.EngineBuffer != 64 {
		t.Fatalf("expected engine buffer override, got %d", cfg.EngineBuffer)
	}
}

func TestLoadInvalidBuffer(t *testing.T) {
	t.Setenv("ENGINE_BUFFER", "not-a-number")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid buffer size")
	}
}

func TestLoadNonPositiveBuffer(t *testing.T) {
	t.Setenv("ENGINE_BUFFER", "0")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for non-positive buffer size")
	}
}
