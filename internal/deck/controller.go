package deck

import (
	"errors"
	"math"
	"sync"
	"time"

	"principles/pkg/logging"
)

const subsystem = "Deck"

// ErrEmptyDeck is returned by New when there are no cards.
var ErrEmptyDeck = errors.New("deck: need at least one card")

type gestureSample struct {
	startX    float64
	startTime time.Time
}

// Controller is the navigation state machine. It is safe for concurrent use,
// which matters only when the scheduler fires on another goroutine.
type Controller struct {
	mu sync.Mutex

	cfg       Config
	scheduler Scheduler
	haptics   Haptics

	total     int
	index     int
	phase     Phase
	direction Direction
	offset    float64
	gesture   *gestureSample

	pending Task
	seq     uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfig overrides the thresholds. Unset fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.cfg = cfg.withDefaults() }
}

// WithScheduler sets the scheduler for deferred index changes.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithHaptics sets the haptic dispatcher.
func WithHaptics(h Haptics) Option {
	return func(c *Controller) {
		if h != nil {
			c.haptics = h
		}
	}
}

// New creates a controller over total real cards, idle on the first card.
func New(total int, opts ...Option) (*Controller, error) {
	if total < 1 {
		return nil, ErrEmptyDeck
	}
	c := &Controller{
		cfg:       DefaultConfig(),
		scheduler: TimerScheduler{},
		haptics:   noHaptics{},
		total:     total,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the effective thresholds.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns a snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	return State{
		Phase:     c.phase,
		Index:     c.index,
		Total:     c.total,
		Direction: c.direction,
		Offset:    c.offset,
	}
}

// Initialize jumps to requested, clamped into [0, N-1] so that a deep link
// never lands on the end card. A running transition is dropped.
func (c *Controller) Initialize(requested int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopPendingLocked()
	c.index = clamp(requested, 0, c.total-1)
	c.phase = PhaseIdle
	c.direction = DirectionNone
	c.offset = 0
	c.gesture = nil
}

// BeginGesture records the pointer-down position. Ignored while animating.
func (c *Controller) BeginGesture(x float64, at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseAnimating {
		return
	}
	c.gesture = &gestureSample{startX: x, startTime: at}
	c.offset = 0
}

// UpdateGesture moves the card with the pointer.
func (c *Controller) UpdateGesture(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trackLocked(x)
}

func (c *Controller) trackLocked(x float64) {
	if c.phase == PhaseAnimating || c.gesture == nil {
		return
	}
	delta := x - c.gesture.startX
	if (c.index == 0 && delta > 0) || (c.index == c.total && delta < 0) {
		delta *= c.cfg.BoundaryResistance
	}
	c.offset = delta
	c.phase = PhaseDragging
}

// EndGesture releases the pointer at x and decides between commit and spring-back.
func (c *Controller) EndGesture(x float64, at time.Time) GestureResult {
	c.mu.Lock()

	if c.phase == PhaseAnimating || c.gesture == nil {
		c.mu.Unlock()
		return GestureIgnored
	}

	c.trackLocked(x)
	offset := c.offset
	start := c.gesture.startTime

	c.gesture = nil
	c.offset = 0
	c.phase = PhaseIdle

	distance := math.Abs(offset)
	durationMs := float64(at.Sub(start)) / float64(time.Millisecond)
	if durationMs < 1 {
		durationMs = 1
	}
	velocity := distance / durationMs

	threshold := c.cfg.DistanceThreshold
	if velocity > c.cfg.VelocityThreshold {
		threshold *= c.cfg.FlickFactor
	}

	if !(distance > threshold || velocity > c.cfg.VelocityThreshold) {
		c.mu.Unlock()
		logging.Debug(subsystem, "gesture spring-back: distance=%.1f velocity=%.3f", distance, velocity)
		return GestureSpringBack
	}

	var (
		intensity Intensity
		ok        bool
	)
	switch {
	case offset < 0 && c.index < c.total:
		intensity, ok = c.navigateLocked(MoveNext, SourceSwipe)
	case offset > 0 && c.index > 0:
		intensity, ok = c.navigateLocked(MovePrev, SourceSwipe)
	}
	c.mu.Unlock()

	if !ok {
		logging.Debug(subsystem, "gesture at boundary: offset=%.1f", offset)
		c.dispatch(IntensityLight)
		return GestureBoundary
	}
	c.dispatch(intensity)
	return GestureCommitted
}

// Navigate moves one card. It reports whether a transition started.
func (c *Controller) Navigate(move Move, source Source) bool {
	c.mu.Lock()
	intensity, ok := c.navigateLocked(move, source)
	c.mu.Unlock()

	if ok {
		c.dispatch(intensity)
	}
	return ok
}

func (c *Controller) navigateLocked(move Move, source Source) (Intensity, bool) {
	if c.phase == PhaseAnimating {
		return 0, false
	}

	var (
		target int
		dir    Direction
	)
	switch move {
	case MoveNext:
		if c.index >= c.total {
			return 0, false
		}
		target, dir = c.index+1, DirectionLeft
	case MovePrev:
		if c.index <= 0 {
			return 0, false
		}
		target, dir = c.index-1, DirectionRight
	default:
		return 0, false
	}

	intensity := IntensityLight
	switch {
	case move == MoveNext && c.index == c.total-1:
		intensity = IntensityHeavy
	case source == SourceSwipe:
		intensity = IntensityMedium
	}

	logging.Debug(subsystem, "navigate %s via %s: %d -> %d", move, source, c.index, target)
	c.startTransitionLocked(target, dir)
	return intensity, true
}

// TapNavigate maps a tap at localX on a card of the given width to a move:
// the left edge goes back, the right edge goes forward, the middle does nothing.
func (c *Controller) TapNavigate(localX, width float64) bool {
	if width <= 0 {
		return false
	}
	frac := localX / width
	edge := c.cfg.TapEdgeFraction
	switch {
	case frac < edge:
		return c.Navigate(MovePrev, SourceTap)
	case frac > 1-edge:
		return c.Navigate(MoveNext, SourceTap)
	default:
		return false
	}
}

// Restart animates back to the first card from any index.
func (c *Controller) Restart() bool {
	c.mu.Lock()
	if c.phase == PhaseAnimating {
		c.mu.Unlock()
		return false
	}
	logging.Debug(subsystem, "restart from %d", c.index)
	c.startTransitionLocked(0, DirectionRight)
	c.mu.Unlock()

	c.dispatch(IntensityHeavy)
	return true
}

// Close stops a pending transition. Call it when the deck is torn down.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopPendingLocked() {
		c.phase = PhaseIdle
		c.direction = DirectionNone
	}
}

func (c *Controller) startTransitionLocked(target int, dir Direction) {
	c.phase = PhaseAnimating
	c.direction = dir
	c.offset = 0
	c.gesture = nil

	c.seq++
	seq := c.seq
	c.pending = c.scheduler.AfterFunc(c.cfg.TransitionDuration, func() {
		c.settle(seq, target)
	})
}

func (c *Controller) settle(seq uint64, target int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A stale task from before Initialize/Close.
	if seq != c.seq || c.phase != PhaseAnimating {
		return
	}
	c.index = clamp(target, 0, c.total)
	c.phase = PhaseIdle
	c.direction = DirectionNone
	c.pending = nil
}

func (c *Controller) stopPendingLocked() bool {
	c.seq++
	if c.pending == nil {
		return false
	}
	c.pending.Stop()
	c.pending = nil
	return true
}

func (c *Controller) dispatch(i Intensity) {
	if err := c.haptics.Impact(i); err != nil {
		logging.Debug(subsystem, "haptic %s failed: %v", i, err)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
