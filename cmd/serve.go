package cmd

import (
	"github.com/spf13/cobra"

	"principles/internal/mcpserver"
	"principles/pkg/logging"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the deck as MCP tools over stdio",
		Long: `Starts an MCP server on stdin/stdout exposing the deck to AI assistants:

  list_principles   every principle
  get_principle     one principle by id
  compose_share     the cast for a principle or the end card
  tip_link          an EIP-681 payment request for a tip

Logs go to stderr so they do not corrupt the protocol stream.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices(cmd, "")
			if err != nil {
				return err
			}
			srv := mcpserver.New("principles", rootCmd.Version, svc.Store, svc.Templates, svc.Share, svc.TipTarget)
			logging.Info("MCP", "Serving %d principles over stdio", svc.Store.Len())
			return srv.ServeStdio()
		},
	}
}
