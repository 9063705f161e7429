package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"principles/internal/app"
)

func newOpenCmd() *cobra.Command {
	var (
		noTUI     bool
		principle int
	)

	cmd := &cobra.Command{
		Use:   "open [link]",
		Short: "Open the deck",
		Long: `Opens the interactive deck.

The optional link picks the first card. It may be a principle number, a URL
with ?principle=N, or a share URL ending in /share/N. Out-of-range numbers are
clamped; anything unreadable starts at the first card.

With --no-tui the starting card is printed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link := ""
			if len(args) == 1 {
				link = args[0]
			}
			if principle > 0 {
				link = strconv.Itoa(principle)
			}

			cfg := app.NewConfig(noTUI, debug, configPath, link)
			cfg.Stdout = cmd.OutOrStdout()

			application, err := app.NewApplication(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return application.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "Print the starting card instead of opening the TUI")
	cmd.Flags().IntVar(&principle, "principle", 0, "Start on principle N (1-based), overrides the link")
	return cmd
}
