package app

import (
	"context"
	"fmt"
	"os"

	"principles/pkg/logging"
)

// Application is the main application structure that bootstraps and runs the deck
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	// CLI logging until the TUI takes over.
	logging.InitForCLI(logLevel(cfg), os.Stderr)

	if err := LoadPrinciplesConfig(cfg); err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration")
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	// The file may have raised or lowered the level.
	logging.InitForCLI(logLevel(cfg), os.Stderr)
	logging.Debug("Bootstrap", "Configuration loaded (explicit path: %q)", cfg.ConfigPath)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Services exposes the wired services to CLI commands.
func (a *Application) Services() *Services {
	return a.services
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return runCLIMode(ctx, a.config, a.services)
	}
	return runTUIMode(ctx, a.config, a.services)
}

func logLevel(cfg *Config) logging.LogLevel {
	if cfg.Debug {
		return logging.LevelDebug
	}
	if cfg.PrinciplesConfig != nil {
		return logging.ParseLevel(cfg.PrinciplesConfig.LogLevel)
	}
	return logging.LevelInfo
}
