package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/xrdcollect/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
}

// NewApp creates an App with its own logger writing to logW and an empty
// registry. The report is written to outW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: registry.New(logger),
	}
}

// Registry returns the application's registry.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
