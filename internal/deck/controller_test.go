package deck

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type manualTask struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTask) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// manualScheduler queues tasks until the test runs them.
type manualScheduler struct {
	tasks []*manualTask
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Task {
	t := &manualTask{d: d, f: f}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *manualScheduler) runAll() {
	tasks := s.tasks
	s.tasks = nil
	for _, t := range tasks {
		if !t.stopped {
			t.fired = true
			t.f()
		}
	}
}

type hapticRecorder struct {
	got []Intensity
	err error
}

func (h *hapticRecorder) Impact(i Intensity) error {
	h.got = append(h.got, i)
	return h.err
}

func (h *hapticRecorder) last() Intensity {
	if len(h.got) == 0 {
		return -1
	}
	return h.got[len(h.got)-1]
}

func newTestController(t *testing.T, total int) (*Controller, *manualScheduler, *hapticRecorder) {
	t.Helper()
	sched := &manualScheduler{}
	haptics := &hapticRecorder{}
	c, err := New(total, WithScheduler(sched), WithHaptics(haptics))
	require.NoError(t, err)
	return c, sched, haptics
}

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// drag performs a full pointer gesture from x=1000 to 1000+delta over d.
func drag(c *Controller, delta float64, d time.Duration) GestureResult {
	c.BeginGesture(1000, t0)
	c.UpdateGesture(1000 + delta/2)
	return c.EndGesture(1000+delta, t0.Add(d))
}

func TestNewRejectsEmptyDeck(t *testing.T) {
	_, err := New(0)
	assert.True(t, errors.Is(err, ErrEmptyDeck))
}

func TestInitializeClamps(t *testing.T) {
	for _, n := range []int{1, 2, 44} {
		c, _, _ := newTestController(t, n)
		for _, v := range []int{-10, -1, 0, 1, 5, 43, 44, 45, 999} {
			c.Initialize(v - 1)
			assert.Equal(t, clamp(v-1, 0, n-1), c.State().Index, "n=%d v=%d", n, v)
			assert.Equal(t, PhaseIdle, c.State().Phase)
		}
	}
}

func TestInitializeNeverLandsOnEndCard(t *testing.T) {
	c, _, _ := newTestController(t, 44)
	c.Initialize(44)
	assert.Equal(t, 43, c.State().Index)
	assert.False(t, c.State().Terminal())
}

func TestThresholdBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		delta    float64
		duration time.Duration
		want     GestureResult
		wantIdx  int
	}{
		{name: "101 units, near-zero velocity commits", delta: -101, duration: time.Hour, want: GestureCommitted, wantIdx: 6},
		{name: "99 units, near-zero velocity springs back", delta: -99, duration: time.Hour, want: GestureSpringBack, wantIdx: 5},
		{name: "exactly 100 units springs back", delta: -100, duration: time.Hour, want: GestureSpringBack, wantIdx: 5},
		{name: "61 units at 0.61/ms commits", delta: -61, duration: 100 * time.Millisecond, want: GestureCommitted, wantIdx: 6},
		{name: "40 units at 0.4/ms springs back", delta: -40, duration: 100 * time.Millisecond, want: GestureSpringBack, wantIdx: 5},
		{name: "right drag commits to previous", delta: 150, duration: time.Second, want: GestureCommitted, wantIdx: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, sched, _ := newTestController(t, 44)
			c.Initialize(5)

			got := drag(c, tt.delta, tt.duration)
			assert.Equal(t, tt.want, got)
			sched.runAll()

			st := c.State()
			assert.Equal(t, tt.wantIdx, st.Index)
			assert.Equal(t, PhaseIdle, st.Phase)
			assert.Zero(t, st.Offset)
		})
	}
}

func TestSpringBackLeavesIndexUnchanged(t *testing.T) {
	c, sched, haptics := newTestController(t, 44)
	for _, start := range []int{0, 10, 43} {
		c.Initialize(start)
		before := c.State().Index

		res := drag(c, -30, 2*time.Second)
		sched.runAll()

		assert.Equal(t, GestureSpringBack, res)
		assert.Equal(t, before, c.State().Index)
	}
	assert.Empty(t, haptics.got)
}

func TestBoundaryDampening(t *testing.T) {
	c, _, _ := newTestController(t, 3)

	c.BeginGesture(0, t0)
	c.UpdateGesture(300)
	st := c.State()
	assert.Equal(t, PhaseDragging, st.Phase)
	assert.InDelta(t, 60, st.Offset, 1e-9)

	c.UpdateGesture(-300)
	assert.InDelta(t, -300, c.State().Offset, 1e-9, "dragging away from the boundary is not damped")
}

func TestBoundaryDampeningAtEndCard(t *testing.T) {
	c, sched, _ := newTestController(t, 1)
	require.True(t, c.Navigate(MoveNext, SourceKeyboard))
	sched.runAll()
	require.True(t, c.State().Terminal())

	c.BeginGesture(500, t0)
	c.UpdateGesture(0)
	assert.InDelta(t, -100, c.State().Offset, 1e-9)
}

func TestCommitAttemptAtBoundarySpringsBack(t *testing.T) {
	t.Run("first card swiped right", func(t *testing.T) {
		c, sched, haptics := newTestController(t, 44)
		res := drag(c, 600, time.Hour) // damped to 120
		sched.runAll()

		assert.Equal(t, GestureBoundary, res)
		assert.Equal(t, 0, c.State().Index)
		assert.Equal(t, []Intensity{IntensityLight}, haptics.got)
	})

	t.Run("end card swiped left", func(t *testing.T) {
		c, sched, haptics := newTestController(t, 2)
		c.Initialize(1)
		require.True(t, c.Navigate(MoveNext, SourceKeyboard))
		sched.runAll()
		haptics.got = nil

		res := drag(c, -600, time.Hour)
		sched.runAll()

		assert.Equal(t, GestureBoundary, res)
		assert.Equal(t, 2, c.State().Index)
		assert.Equal(t, []Intensity{IntensityLight}, haptics.got)
	})
}

func TestSingleEventGestureFloorsDuration(t *testing.T) {
	// Press and release in the same instant: duration is floored to 1ms, so
	// a tiny travel already reads as a fast flick.
	c, sched, _ := newTestController(t, 44)
	c.Initialize(3)

	c.BeginGesture(100, t0)
	res := c.EndGesture(98, t0)
	sched.runAll()
	assert.Equal(t, GestureCommitted, res)
	assert.Equal(t, 4, c.State().Index)

	// Released before it was pressed (clock skew) is floored the same way.
	c.BeginGesture(100, t0)
	res = c.EndGesture(100.4, t0.Add(-time.Second))
	sched.runAll()
	assert.Equal(t, GestureSpringBack, res)
	assert.Equal(t, 4, c.State().Index)
}

func TestEndGestureWithoutBeginIsIgnored(t *testing.T) {
	c, _, _ := newTestController(t, 44)
	assert.Equal(t, GestureIgnored, c.EndGesture(0, t0))
	c.UpdateGesture(50)
	assert.Equal(t, PhaseIdle, c.State().Phase)
}

func TestNavigateBounds(t *testing.T) {
	c, sched, _ := newTestController(t, 3)

	assert.False(t, c.Navigate(MovePrev, SourceKeyboard))
	assert.Equal(t, 0, c.State().Index)

	for i := 0; i < 10; i++ {
		c.Navigate(MoveNext, SourceKeyboard)
		sched.runAll()
		assert.LessOrEqual(t, c.State().Index, 3)
	}
	assert.Equal(t, 3, c.State().Index)
	assert.False(t, c.Navigate(MoveNext, SourceKeyboard))

	for i := 0; i < 10; i++ {
		c.Navigate(MovePrev, SourceKeyboard)
		sched.runAll()
		assert.GreaterOrEqual(t, c.State().Index, 0)
	}
	assert.Equal(t, 0, c.State().Index)
}

func TestNavigateWhileAnimatingIsNoOp(t *testing.T) {
	c, sched, haptics := newTestController(t, 44)
	c.Initialize(10)

	require.True(t, c.Navigate(MoveNext, SourceKeyboard))
	before := c.State()
	require.True(t, before.Animating())
	assert.Equal(t, DirectionLeft, before.Direction)

	assert.False(t, c.Navigate(MoveNext, SourceKeyboard))
	assert.False(t, c.Navigate(MovePrev, SourceSwipe))
	assert.False(t, c.TapNavigate(90, 100))
	assert.False(t, c.Restart())
	c.BeginGesture(0, t0)
	c.UpdateGesture(-500)
	assert.Equal(t, GestureIgnored, c.EndGesture(-500, t0.Add(time.Second)))

	assert.Equal(t, before, c.State())
	assert.Len(t, sched.tasks, 1)
	assert.Len(t, haptics.got, 1)

	sched.runAll()
	assert.Equal(t, 11, c.State().Index)
	assert.Equal(t, PhaseIdle, c.State().Phase)
	assert.Equal(t, DirectionNone, c.State().Direction)
}

func TestTransitionUsesConfiguredDuration(t *testing.T) {
	c, sched, _ := newTestController(t, 44)
	require.True(t, c.Navigate(MoveNext, SourceSwipe))
	require.Len(t, sched.tasks, 1)
	assert.Equal(t, 300*time.Millisecond, sched.tasks[0].d)
	assert.Equal(t, 0, c.State().Index, "index changes only when the task fires")
}

func TestFiveSwipesScenario(t *testing.T) {
	c, sched, haptics := newTestController(t, 44)
	for i := 0; i < 5; i++ {
		require.True(t, c.Navigate(MoveNext, SourceSwipe))
		sched.runAll()
	}
	assert.Equal(t, 5, c.State().Index)
	require.Len(t, haptics.got, 5)
	for _, h := range haptics.got {
		assert.LessOrEqual(t, h, IntensityMedium)
	}
}

func TestCompletingDeckIsHeavy(t *testing.T) {
	c, sched, haptics := newTestController(t, 44)
	c.Initialize(43)

	require.True(t, c.Navigate(MoveNext, SourceSwipe))
	sched.runAll()

	assert.Equal(t, 44, c.State().Index)
	assert.True(t, c.State().Terminal())
	assert.Equal(t, IntensityHeavy, haptics.last())
}

func TestCompletingDeckByKeyboardIsHeavy(t *testing.T) {
	c, sched, haptics := newTestController(t, 2)
	c.Initialize(1)
	require.True(t, c.Navigate(MoveNext, SourceKeyboard))
	sched.runAll()
	assert.Equal(t, IntensityHeavy, haptics.last())
}

func TestRestartFromEndCard(t *testing.T) {
	c, sched, haptics := newTestController(t, 44)
	c.Initialize(43)
	require.True(t, c.Navigate(MoveNext, SourceSwipe))
	sched.runAll()
	require.Equal(t, 44, c.State().Index)

	require.True(t, c.Restart())
	assert.Equal(t, DirectionRight, c.State().Direction)
	sched.runAll()

	assert.Equal(t, 0, c.State().Index)
	assert.Equal(t, IntensityHeavy, haptics.last())
}

func TestRestartAlwaysSucceedsWhenIdle(t *testing.T) {
	c, sched, _ := newTestController(t, 44)
	assert.True(t, c.Restart())
	sched.runAll()
	assert.Equal(t, 0, c.State().Index)
}

func TestSourceIntensities(t *testing.T) {
	tests := []struct {
		source Source
		want   Intensity
	}{
		{SourceSwipe, IntensityMedium},
		{SourceTap, IntensityLight},
		{SourceKeyboard, IntensityLight},
	}
	for _, tt := range tests {
		t.Run(tt.source.String(), func(t *testing.T) {
			c, sched, haptics := newTestController(t, 44)
			c.Initialize(10)
			require.True(t, c.Navigate(MoveNext, tt.source))
			sched.runAll()
			assert.Equal(t, []Intensity{tt.want}, haptics.got)
		})
	}
}

func TestTapNavigate(t *testing.T) {
	const width = 200.0
	tests := []struct {
		name    string
		localX  float64
		wantOK  bool
		wantIdx int
	}{
		{name: "left edge", localX: 0, wantOK: true, wantIdx: 4},
		{name: "30 percent", localX: 0.3 * width, wantOK: true, wantIdx: 4},
		{name: "just right of the left edge", localX: 0.41 * width, wantOK: false, wantIdx: 5},
		{name: "middle", localX: 0.5 * width, wantOK: false, wantIdx: 5},
		{name: "just left of the right edge", localX: 0.59 * width, wantOK: false, wantIdx: 5},
		{name: "70 percent", localX: 0.7 * width, wantOK: true, wantIdx: 6},
		{name: "right edge", localX: width, wantOK: true, wantIdx: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, sched, _ := newTestController(t, 44)
			c.Initialize(5)
			assert.Equal(t, tt.wantOK, c.TapNavigate(tt.localX, width))
			sched.runAll()
			assert.Equal(t, tt.wantIdx, c.State().Index)
		})
	}
}

func TestTapNavigateZeroWidth(t *testing.T) {
	c, _, _ := newTestController(t, 44)
	c.Initialize(5)
	assert.False(t, c.TapNavigate(10, 0))
	assert.False(t, c.TapNavigate(10, -20))
}

func TestHapticFailureIsSwallowed(t *testing.T) {
	sched := &manualScheduler{}
	haptics := &hapticRecorder{err: errors.New("no haptics on this client")}
	c, err := New(44, WithScheduler(sched), WithHaptics(haptics))
	require.NoError(t, err)

	assert.True(t, c.Navigate(MoveNext, SourceSwipe))
	sched.runAll()
	assert.Equal(t, 1, c.State().Index)
}

func TestNavigateDuringDragDiscardsGesture(t *testing.T) {
	c, sched, _ := newTestController(t, 44)
	c.Initialize(5)
	c.BeginGesture(0, t0)
	c.UpdateGesture(-50)
	require.Equal(t, PhaseDragging, c.State().Phase)

	require.True(t, c.Navigate(MovePrev, SourceKeyboard))
	assert.Zero(t, c.State().Offset)
	sched.runAll()

	assert.Equal(t, GestureIgnored, c.EndGesture(-500, t0.Add(time.Millisecond)))
	assert.Equal(t, 4, c.State().Index)
}

func TestCloseDropsPendingTransition(t *testing.T) {
	c, sched, _ := newTestController(t, 44)
	require.True(t, c.Navigate(MoveNext, SourceSwipe))

	c.Close()
	sched.runAll()

	st := c.State()
	assert.Equal(t, 0, st.Index)
	assert.Equal(t, PhaseIdle, st.Phase)
}

func TestInitializeDropsStaleTransition(t *testing.T) {
	c, sched, _ := newTestController(t, 44)
	require.True(t, c.Navigate(MoveNext, SourceSwipe))
	c.Initialize(20)
	sched.runAll()
	assert.Equal(t, 20, c.State().Index)
}

func TestConfigDefaultsFillGaps(t *testing.T) {
	c, err := New(5, WithConfig(Config{DistanceThreshold: 40}))
	require.NoError(t, err)

	cfg := c.Config()
	assert.Equal(t, 40.0, cfg.DistanceThreshold)
	assert.Equal(t, 0.5, cfg.VelocityThreshold)
	assert.Equal(t, 0.6, cfg.FlickFactor)
	assert.Equal(t, 300*time.Millisecond, cfg.TransitionDuration)
}

func TestTimerSchedulerSettles(t *testing.T) {
	defer goleak.VerifyNone(t)

	c, err := New(3, WithConfig(Config{TransitionDuration: 5 * time.Millisecond}))
	require.NoError(t, err)

	require.True(t, c.Navigate(MoveNext, SourceKeyboard))
	require.Eventually(t, func() bool {
		st := c.State()
		return st.Index == 1 && st.Phase == PhaseIdle
	}, time.Second, time.Millisecond)
}
