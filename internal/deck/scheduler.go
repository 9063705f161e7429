package deck

import "time"

// Task is a handle to a scheduled callback.
type Task interface {
	// Stop prevents the callback from running. It reports whether it did.
	Stop() bool
}

// Scheduler runs a callback after a delay. Implementations must not invoke
// f synchronously from AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

// TimerScheduler schedules on the runtime timer. Callbacks run on their own goroutine.
type TimerScheduler struct{}

// AfterFunc implements Scheduler.
func (TimerScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}
