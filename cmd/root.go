package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Flags shared by every command that loads configuration.
var (
	configPath string
	debug      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "principles",
	Short: "Swipe through the Builder Principles in your terminal",
	Long: `principles is a terminal card deck of the Builder Principles.

Drag a card with the mouse to swipe, click its edges to step, or use the
arrow keys. Any card can be shared as a Farcaster cast, and the author can
be tipped in USDC on Base through a payment link opened in your wallet.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unknown principle, failed share)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "principles version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file layered over ~/.config/principles and ./.principles")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newOpenCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newShareCmd())
	rootCmd.AddCommand(newTipCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
