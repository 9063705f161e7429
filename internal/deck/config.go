package deck

import "time"

// Config holds the tunable constants of the state machine.
type Config struct {
	// DistanceThreshold is the drag distance that commits a move.
	DistanceThreshold float64
	// VelocityThreshold in units per millisecond.
	VelocityThreshold float64
	// FlickFactor scales DistanceThreshold when the release is faster than VelocityThreshold.
	FlickFactor float64
	// BoundaryResistance scales drags that push past the first or the end card.
	BoundaryResistance float64
	// TapEdgeFraction is the share of the width on each side that maps to prev/next.
	TapEdgeFraction float64
	// TransitionDuration is how long a card animates out before the index changes.
	TransitionDuration time.Duration
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		DistanceThreshold:  100,
		VelocityThreshold:  0.5,
		FlickFactor:        0.6,
		BoundaryResistance: 0.2,
		TapEdgeFraction:    0.4,
		TransitionDuration: 300 * time.Millisecond,
	}
}

// withDefaults fills unset or out-of-range fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.DistanceThreshold <= 0 {
		c.DistanceThreshold = d.DistanceThreshold
	}
	if c.VelocityThreshold <= 0 {
		c.VelocityThreshold = d.VelocityThreshold
	}
	if c.FlickFactor <= 0 || c.FlickFactor > 1 {
		c.FlickFactor = d.FlickFactor
	}
	if c.BoundaryResistance <= 0 || c.BoundaryResistance > 1 {
		c.BoundaryResistance = d.BoundaryResistance
	}
	if c.TapEdgeFraction <= 0 || c.TapEdgeFraction >= 0.5 {
		c.TapEdgeFraction = d.TapEdgeFraction
	}
	if c.TransitionDuration <= 0 {
		c.TransitionDuration = d.TransitionDuration
	}
	return c
}
