package app

import (
	"io"
	"os"

	"principles/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath is an explicit config file layered over the user and project files.
	ConfigPath string

	// StartLink selects the first card: a number, ?principle=N or /share/N.
	StartLink string

	// Stdout receives CLI output and the stdout opener.
	Stdout io.Writer

	// Loaded configuration, set by NewApplication or LoadPrinciplesConfig.
	PrinciplesConfig *config.PrinciplesConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath, startLink string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
		StartLink:  startLink,
		Stdout:     os.Stdout,
	}
}

// LoadPrinciplesConfig loads the layered configuration into cfg unless it is
// already present.
func LoadPrinciplesConfig(cfg *Config) error {
	if cfg.PrinciplesConfig != nil {
		return nil
	}
	loaded, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return err
	}
	cfg.PrinciplesConfig = &loaded
	return nil
}

func (c *Config) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}
