package tip

import (
	"context"
	"fmt"

	"principles/internal/opener"
)

const (
	// BaseChainID is the Base mainnet chain id.
	BaseChainID = 8453
	// BaseUSDC is the USDC token contract on Base.
	BaseUSDC = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
)

// PaymentLink returns an EIP-681 request for an ERC-20 transfer of p.
func PaymentLink(token string, chainID int, p Payload) string {
	return fmt.Sprintf("ethereum:%s@%d/transfer?address=%s&uint256=%d",
		token, chainID, p.RecipientAddress, p.Amount.BaseUnits())
}

// PaymentLinkWallet hands an EIP-681 payment link to an Opener for the user's
// own wallet to sign.
type PaymentLinkWallet struct {
	Token   string
	ChainID int
	Opener  opener.Opener
}

// Send implements Wallet.
func (w PaymentLinkWallet) Send(ctx context.Context, p Payload) (Receipt, error) {
	token, chain := w.Token, w.ChainID
	if token == "" {
		token = BaseUSDC
	}
	if chain == 0 {
		chain = BaseChainID
	}
	link := PaymentLink(token, chain, p)
	if err := w.Opener.Open(ctx, link); err != nil {
		return Receipt{}, fmt.Errorf("open payment link: %w", err)
	}
	return Receipt{Payload: p, Link: link}, nil
}
