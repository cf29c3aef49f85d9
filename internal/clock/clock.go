// Package clock provides the timer capability the game loop and the high score
// store depend on. Real drives play from the wall clock; Manual is a virtual
// clock that tests advance explicitly.
package clock

import "time"

// Handle controls a scheduled callback.
type Handle interface {
	// Stop cancels the callback. Safe to call more than once.
	Stop()
	// Stopped reports whether Stop was called (or a one-shot already fired).
	Stopped() bool
}

// Scheduler schedules callbacks. Implementations deliver every callback on a
// single logical thread, so callers never need locking.
type Scheduler interface {
	// Every runs fn repeatedly, first after one period.
	Every(period time.Duration, fn func()) Handle
	// After runs fn once after delay.
	After(delay time.Duration, fn func()) Handle
}
