// Package haptics provides the terminal stand-ins for device haptic feedback.
package haptics

import (
	"fmt"
	"io"
	"sync"

	"principles/internal/deck"
	"principles/pkg/logging"
)

const subsystem = "Haptics"

// Notification is the outcome feedback for share and tip.
type Notification int

const (
	NotifySuccess Notification = iota
	NotifyWarning
	NotifyError
)

func (n Notification) String() string {
	switch n {
	case NotifySuccess:
		return "success"
	case NotifyWarning:
		return "warning"
	case NotifyError:
		return "error"
	default:
		return "unknown"
	}
}

// Dispatcher is the full haptic capability. deck.Controller only needs Impact.
type Dispatcher interface {
	deck.Haptics
	Selection() error
	Notify(n Notification) error
}

// Off discards all feedback.
type Off struct{}

func (Off) Impact(deck.Intensity) error { return nil }
func (Off) Selection() error            { return nil }
func (Off) Notify(Notification) error   { return nil }

// Bell rings the terminal bell for impacts at or above MinIntensity and for
// error notifications.
type Bell struct {
	mu           sync.Mutex
	W            io.Writer
	MinIntensity deck.Intensity
}

const bel = "\a"

// Impact implements deck.Haptics.
func (b *Bell) Impact(i deck.Intensity) error {
	if i < b.MinIntensity {
		return nil
	}
	return b.ring()
}

// Selection is too subtle for a bell.
func (b *Bell) Selection() error { return nil }

// Notify rings on errors only.
func (b *Bell) Notify(n Notification) error {
	if n != NotifyError {
		return nil
	}
	return b.ring()
}

func (b *Bell) ring() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.W == nil {
		return fmt.Errorf("bell: no writer")
	}
	_, err := io.WriteString(b.W, bel)
	return err
}

// Log records feedback as debug log lines. Useful when the terminal bell is
// unwanted but the feedback trail is not.
type Log struct{}

func (Log) Impact(i deck.Intensity) error {
	logging.Debug(subsystem, "impact %s", i)
	return nil
}

func (Log) Selection() error {
	logging.Debug(subsystem, "selection")
	return nil
}

func (Log) Notify(n Notification) error {
	logging.Debug(subsystem, "notify %s", n)
	return nil
}

// New returns the dispatcher for a config mode: "bell", "log" or "off".
func New(mode string, w io.Writer) (Dispatcher, error) {
	switch mode {
	case "", "off":
		return Off{}, nil
	case "log":
		return Log{}, nil
	case "bell":
		return &Bell{W: w, MinIntensity: deck.IntensityMedium}, nil
	default:
		return nil, fmt.Errorf("unknown haptics mode %q", mode)
	}
}

// Safe runs a haptic call and logs its error instead of returning it.
func Safe(err error) {
	if err != nil {
		logging.Debug(subsystem, "haptic dispatch failed: %v", err)
	}
}
