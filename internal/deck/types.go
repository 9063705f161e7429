package deck

import "fmt"

// Phase is the coarse state of the controller.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseAnimating
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseDragging:
		return "Dragging"
	case PhaseAnimating:
		return "Animating"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Direction is the direction a card leaves the screen in.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Move is a navigation intent.
type Move int

const (
	MoveNext Move = iota
	MovePrev
)

func (m Move) String() string {
	if m == MovePrev {
		return "prev"
	}
	return "next"
}

// Source identifies the input that produced a Move.
type Source int

const (
	SourceSwipe Source = iota
	SourceTap
	SourceKeyboard
)

func (s Source) String() string {
	switch s {
	case SourceSwipe:
		return "swipe"
	case SourceTap:
		return "tap"
	case SourceKeyboard:
		return "keyboard"
	default:
		return "unknown"
	}
}

// Intensity is the strength hint handed to the haptic dispatcher.
type Intensity int

const (
	IntensityLight Intensity = iota
	IntensityMedium
	IntensityHeavy
)

func (i Intensity) String() string {
	switch i {
	case IntensityLight:
		return "light"
	case IntensityMedium:
		return "medium"
	case IntensityHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// Haptics receives impact hints. Errors are logged and otherwise ignored.
type Haptics interface {
	Impact(Intensity) error
}

// HapticsFunc adapts a function to Haptics.
type HapticsFunc func(Intensity) error

// Impact implements Haptics.
func (f HapticsFunc) Impact(i Intensity) error {
	return f(i)
}

type noHaptics struct{}

func (noHaptics) Impact(Intensity) error { return nil }

// GestureResult is how EndGesture resolved.
type GestureResult int

const (
	// GestureIgnored means no gesture was in progress or a transition was running.
	GestureIgnored GestureResult = iota
	// GestureSpringBack means the release did not meet the commit threshold.
	GestureSpringBack
	// GestureBoundary means the threshold was met but there is no card that way.
	GestureBoundary
	// GestureCommitted means the release started a transition.
	GestureCommitted
)

func (r GestureResult) String() string {
	switch r {
	case GestureSpringBack:
		return "spring-back"
	case GestureBoundary:
		return "boundary"
	case GestureCommitted:
		return "committed"
	default:
		return "ignored"
	}
}

// State is a snapshot of the controller.
type State struct {
	Phase     Phase
	Index     int
	Total     int
	Direction Direction
	// Offset is the effective horizontal drag offset; zero unless dragging.
	Offset float64
}

// Animating reports whether a transition is in flight.
func (s State) Animating() bool {
	return s.Phase == PhaseAnimating
}

// Terminal reports whether the end card is showing.
func (s State) Terminal() bool {
	return s.Index == s.Total
}
