package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"principles/internal/share"
)

func newShareCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "share <id|end>",
		Short: "Compose a Farcaster cast for a principle",
		Long: `Builds the cast for a principle, or for the end card with "end", and opens
the configured composer with it.

With --dry-run the prepared cast and its compose URL are printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices(cmd, "")
			if err != nil {
				return err
			}
			unit, err := resolveUnit(svc.Store, args[0])
			if err != nil {
				return err
			}
			req, err := svc.Templates.ForUnit(unit)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if dryRun {
				cast := svc.Share.Prepare(ctx, req)
				return printJSON(cmd, struct {
					share.Cast
					ComposeURL string `json:"composeUrl"`
				}{cast, intentURL(svc.Share, cast)})
			}

			cast, err := svc.Share.Share(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Cast ready with %d embed(s)\n", len(cast.Embeds))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the cast instead of opening the composer")
	return cmd
}

func intentURL(g *share.Gateway, cast share.Cast) string {
	if c, ok := g.Composer.(share.IntentComposer); ok {
		return c.IntentURL(cast)
	}
	return share.IntentComposer{}.IntentURL(cast)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
