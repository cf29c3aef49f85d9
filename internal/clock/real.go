package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// Real schedules callbacks on the wall clock.
// Timers run on their own goroutines but never call back directly: every due
// callback is queued on Events, and the host runs it on its own thread (the
// Bubble Tea update loop). A callback whose handle is stopped while it sits in
// the queue is dropped.
type Real struct {
	events    chan func()
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewReal creates a wall-clock scheduler.
func NewReal() *Real {
	return &Real{
		events: make(chan func(), 16),
		done:   make(chan struct{}),
	}
}

// Events returns the queue of due callbacks. The host must drain it.
func (r *Real) Events() <-chan func() {
	return r.events
}

// Done is closed by Close.
func (r *Real) Done() <-chan struct{} {
	return r.done
}

// Every implements Scheduler.
func (r *Real) Every(period time.Duration, fn func()) Handle {
	if period <= 0 {
		period = time.Millisecond
	}
	h := newRealTimer()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !r.deliver(h, func() {
					if !h.Stopped() {
						fn()
					}
				}) {
					return
				}
			case <-h.stop:
				return
			case <-r.done:
				return
			}
		}
	}()
	return h
}

// After implements Scheduler.
func (r *Real) After(delay time.Duration, fn func()) Handle {
	h := newRealTimer()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			r.deliver(h, func() {
				if h.markFired() {
					fn()
				}
			})
		case <-h.stop:
		case <-r.done:
		}
	}()
	return h
}

// deliver queues fn unless the handle or the scheduler stops first.
func (r *Real) deliver(h *realTimer, fn func()) bool {
	select {
	case r.events <- fn:
		return true
	case <-h.stop:
		return false
	case <-r.done:
		return false
	}
}

// Close stops every timer goroutine and waits for them to exit.
// Callbacks still sitting in the queue are abandoned.
func (r *Real) Close() {
	r.closeOnce.Do(func() {
		close(r.done)
	})
	r.wg.Wait()
}

type realTimer struct {
	stop     chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
}

func newRealTimer() *realTimer {
	return &realTimer{stop: make(chan struct{})}
}

// Stop implements Handle.
func (t *realTimer) Stop() {
	t.stopOnce.Do(func() {
		t.stopped.Store(true)
		close(t.stop)
	})
}

// Stopped implements Handle.
func (t *realTimer) Stopped() bool {
	return t.stopped.Load()
}

// markFired retires a one-shot timer. Returns false if it was stopped first.
func (t *realTimer) markFired() bool {
	fired := false
	t.stopOnce.Do(func() {
		t.stopped.Store(true)
		close(t.stop)
		fired = true
	})
	return fired
}
