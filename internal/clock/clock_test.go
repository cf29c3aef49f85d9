package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualEvery(t *testing.T) {
	m := NewManual(epoch)
	count := 0
	h := m.Every(100*time.Millisecond, func() { count++ })

	m.Advance(99 * time.Millisecond)
	if count != 0 {
		t.Fatalf("fired early: count=%d", count)
	}

	m.Advance(1 * time.Millisecond)
	if count != 1 {
		t.Fatalf("expected 1 fire at 100ms, got %d", count)
	}

	m.Advance(350 * time.Millisecond)
	if count != 4 {
		t.Errorf("expected 4 fires by 450ms, got %d", count)
	}

	h.Stop()
	m.Advance(time.Second)
	if count != 4 {
		t.Errorf("stopped timer fired: count=%d", count)
	}
	if !h.Stopped() {
		t.Error("Stopped() should report true after Stop")
	}
}

func TestManualAfter(t *testing.T) {
	m := NewManual(epoch)
	fired := 0
	h := m.After(200*time.Millisecond, func() { fired++ })

	m.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("one-shot should fire exactly once, got %d", fired)
	}
	if !h.Stopped() {
		t.Error("one-shot should report stopped after firing")
	}
	if m.Pending() != 0 {
		t.Errorf("expected no pending timers, got %d", m.Pending())
	}
}

func TestManualOrderAndTies(t *testing.T) {
	m := NewManual(epoch)
	var order []string
	m.Every(30*time.Millisecond, func() { order = append(order, "a") })
	m.After(30*time.Millisecond, func() { order = append(order, "b") })
	m.After(10*time.Millisecond, func() { order = append(order, "c") })

	m.Advance(30 * time.Millisecond)

	want := []string{"c", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestManualRescheduleFromCallback(t *testing.T) {
	m := NewManual(epoch)
	fires := 0
	var h Handle
	h = m.Every(100*time.Millisecond, func() {
		fires++
		h.Stop()
		h = m.Every(50*time.Millisecond, func() { fires++ })
	})

	// 100ms: first timer fires and swaps itself for a 50ms timer.
	// 150ms, 200ms: the new timer fires.
	m.Advance(200 * time.Millisecond)
	if fires != 3 {
		t.Errorf("expected 3 fires, got %d", fires)
	}
	if got := m.Now().Sub(epoch); got != 200*time.Millisecond {
		t.Errorf("Now() advanced %v, want 200ms", got)
	}
}

func TestRealDeliversThroughEvents(t *testing.T) {
	r := NewReal()
	defer r.Close()

	fired := make(chan struct{}, 1)
	r.After(5*time.Millisecond, func() { fired <- struct{}{} })

	select {
	case fn := <-r.Events():
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	select {
	case <-fired:
	default:
		t.Fatal("callback did not run when event executed")
	}
}

func TestRealDropsStoppedCallback(t *testing.T) {
	r := NewReal()
	defer r.Close()

	ran := false
	h := r.Every(5*time.Millisecond, func() { ran = true })

	var fn func()
	select {
	case fn = <-r.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	h.Stop()
	fn()
	if ran {
		t.Error("callback for a stopped handle should be dropped")
	}
}

func TestRealCloseWithPendingTimers(t *testing.T) {
	r := NewReal()
	r.Every(time.Millisecond, func() {})
	r.After(time.Hour, func() {})

	done := make(chan struct{})
	go func() {
		r.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}
}
