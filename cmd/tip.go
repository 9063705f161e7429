package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"principles/internal/tip"
)

func newTipCmd() *cobra.Command {
	var (
		amount string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "tip",
		Short: "Tip the author in USDC on Base",
		Long: `Opens an EIP-681 payment request for a USDC transfer on Base to the
configured recipient. Your wallet signs and sends it; nothing is sent from here.

Without --amount the configured default preset is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices(cmd, "")
			if err != nil {
				return err
			}

			a := svc.TipTarget.Default
			if amount != "" {
				if a, err = tip.ParseAmount(amount); err != nil {
					return err
				}
			}
			p := tip.Payload{
				RecipientAddress: svc.TipTarget.Address,
				RecipientFID:     svc.TipTarget.FID,
				Amount:           a,
			}

			if dryRun {
				if err := p.Validate(); err != nil {
					return err
				}
				return printJSON(cmd, tip.Receipt{
					Payload: p,
					Link:    tip.PaymentLink(tokenOr(svc.TipTarget.Token), chainOr(svc.TipTarget.ChainID), p),
				})
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			r, err := svc.Tip.Tip(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Payment request for %s USDC opened\n", r.Payload.Amount)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Amount in USDC, e.g. 5 or 2.50")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the payment request instead of opening it")
	return cmd
}

func tokenOr(token string) string {
	if token == "" {
		return tip.BaseUSDC
	}
	return token
}

func chainOr(id int) int {
	if id == 0 {
		return tip.BaseChainID
	}
	return id
}
