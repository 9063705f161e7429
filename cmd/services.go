package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"principles/internal/app"
)

// loadServices boots the application in CLI mode and returns its services.
func loadServices(cmd *cobra.Command, startLink string) (*app.Services, error) {
	cfg := app.NewConfig(true, debug, configPath, startLink)
	cfg.Stdout = cmd.OutOrStdout()

	application, err := app.NewApplication(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Services(), nil
}
