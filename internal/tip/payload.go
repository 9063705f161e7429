package tip

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"principles/pkg/logging"
)

const subsystem = "Tip"

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Payload is one tip.
type Payload struct {
	RecipientAddress string `json:"recipientAddress"`
	RecipientFID     int    `json:"recipientFid"`
	Amount           Amount `json:"amount"`
}

// Validate checks the address shape and that the amount is positive.
func (p Payload) Validate() error {
	if !addressPattern.MatchString(p.RecipientAddress) {
		return fmt.Errorf("%w: %q", ErrInvalidRecipient, p.RecipientAddress)
	}
	if !p.Amount.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, p.Amount)
	}
	return nil
}

// Receipt describes what the wallet did with a tip.
type Receipt struct {
	Payload Payload `json:"payload"`
	// Link is the payment request the user was handed, if any.
	Link string `json:"link,omitempty"`
}

// Wallet performs or hands off the transfer.
type Wallet interface {
	Send(ctx context.Context, p Payload) (Receipt, error)
}

// Gateway validates tips and delegates them to a Wallet.
type Gateway struct {
	Wallet Wallet
}

// Tip validates p and passes it to the wallet.
func (g *Gateway) Tip(ctx context.Context, p Payload) (Receipt, error) {
	p.RecipientAddress = strings.TrimSpace(p.RecipientAddress)
	if err := p.Validate(); err != nil {
		return Receipt{}, err
	}
	if g.Wallet == nil {
		return Receipt{}, fmt.Errorf("tip: no wallet configured")
	}
	logging.Info(subsystem, "sending %s USDC to fid %d", p.Amount, p.RecipientFID)
	r, err := g.Wallet.Send(ctx, p)
	if err != nil {
		logging.Error(subsystem, err, "tip failed")
		return Receipt{}, fmt.Errorf("send tip: %w", err)
	}
	return r, nil
}
