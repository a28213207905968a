package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PlanPaths []string // .hcl files or directories of them

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.PlanPaths) == 0 {
		return nil, errors.New("PlanPaths is a required configuration field and cannot be empty")
	}
	for _, p := range cfg.PlanPaths {
		if p == "" {
			return nil, errors.New("plan path cannot be empty")
		}
	}

	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
