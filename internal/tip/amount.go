// Package tip builds and validates USDC tips and hands them to a wallet.
package tip

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Decimals is the USDC token precision.
const Decimals = 6

var (
	// ErrInvalidAmount is returned for zero, negative or malformed amounts.
	ErrInvalidAmount = errors.New("tip: invalid amount")
	// ErrInvalidRecipient is returned for a malformed recipient address.
	ErrInvalidRecipient = errors.New("tip: invalid recipient address")
)

var unit = big.NewInt(1_000_000)

// Amount is a USDC value in base units (10^-6 USDC).
type Amount int64

// USDC returns n whole USDC.
func USDC(n int64) Amount {
	return Amount(n * unit.Int64())
}

// ParseAmount parses a decimal string like "5" or "2.50". Digits past the
// sixth decimal are truncated. Non-positive results are invalid.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	r.Mul(r, new(big.Rat).SetInt(unit))
	base := new(big.Int).Quo(r.Num(), r.Denom())
	if base.Sign() <= 0 || !base.IsInt64() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Amount(base.Int64()), nil
}

// Valid reports whether a is positive.
func (a Amount) Valid() bool {
	return a > 0
}

// BaseUnits is the integer token amount for on-chain transfers.
func (a Amount) BaseUnits() int64 {
	return int64(a)
}

// String renders the amount as a decimal without trailing zeros.
func (a Amount) String() string {
	whole := int64(a) / unit.Int64()
	frac := int64(a) % unit.Int64()
	if frac < 0 {
		frac = -frac
	}
	if frac == 0 {
		return fmt.Sprintf("%d", whole)
	}
	s := strings.TrimRight(fmt.Sprintf("%d.%06d", whole, frac), "0")
	if a < 0 && whole == 0 {
		s = "-" + s
	}
	return s
}
