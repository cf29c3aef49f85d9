package clock

import (
	"sync"
	"time"
)

// Manual is a controllable virtual clock for deterministic tests.
// Callbacks only fire from Advance, on the caller's goroutine.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	clock   *Manual
	due     time.Time
	period  time.Duration // 0 for one-shot
	seq     uint64
	fn      func()
	stopped bool
}

// NewManual creates a manual clock starting at the given time.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current virtual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Every implements Scheduler.
func (m *Manual) Every(period time.Duration, fn func()) Handle {
	if period <= 0 {
		period = time.Nanosecond
	}
	return m.add(period, period, fn)
}

// After implements Scheduler.
func (m *Manual) After(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	return m.add(delay, 0, fn)
}

func (m *Manual) add(delay, period time.Duration, fn func()) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{
		clock:  m,
		due:    m.now.Add(delay),
		period: period,
		seq:    m.seq,
		fn:     fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every callback that falls due
// in time order. Ties fire in scheduling order. Callbacks may schedule or stop
// timers; new timers due within the window fire in the same call.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.due
		if next.period > 0 {
			next.due = next.due.Add(next.period)
		} else {
			next.stopped = true
		}
		m.prune()
		fn := next.fn
		m.mu.Unlock()

		fn()
	}
}

// Pending returns the number of live timers.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prune()
	return len(m.timers)
}

// nextDue returns the earliest live timer due at or before target.
// Must be called with mu held.
func (m *Manual) nextDue(target time.Time) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.stopped || t.due.After(target) {
			continue
		}
		if best == nil || t.due.Before(best.due) || (t.due.Equal(best.due) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// prune drops stopped timers. Must be called with mu held.
func (m *Manual) prune() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(m.timers); i++ {
		m.timers[i] = nil
	}
	m.timers = live
}

// Stop implements Handle.
func (t *manualTimer) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.stopped = true
}

// Stopped implements Handle.
func (t *manualTimer) Stopped() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return t.stopped
}
