package highscore

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/braille-runner/internal/clock"
)

type write struct {
	key   string
	score int
}

type fakeBackend struct {
	values  map[string]int
	writes  []write
	readErr error
	saveErr error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{values: map[string]int{}}
}

func (b *fakeBackend) HighScore(key string) (int, error) {
	if b.readErr != nil {
		return 0, b.readErr
	}
	return b.values[key], nil
}

func (b *fakeBackend) SetHighScore(key string, score int) error {
	if b.saveErr != nil {
		return b.saveErr
	}
	b.writes = append(b.writes, write{key, score})
	b.values[key] = score
	return nil
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestStoreReadsPersistedValue(t *testing.T) {
	backend := newFakeBackend()
	backend.values[DefaultKey] = 10

	s := New(backend, clock.NewManual(epoch))
	if s.Best() != 10 {
		t.Errorf("Best() = %d, expected 10", s.Best())
	}
}

func TestStoreDebouncesClimbingScore(t *testing.T) {
	backend := newFakeBackend()
	backend.values[DefaultKey] = 10
	sched := clock.NewManual(epoch)
	s := New(backend, sched)

	for _, score := range []int{11, 12, 13} {
		if !s.Offer(score) {
			t.Errorf("Offer(%d) should be a new best", score)
		}
		sched.Advance(50 * time.Millisecond)
	}

	if len(backend.writes) != 0 {
		t.Fatalf("write committed inside the debounce window: %v", backend.writes)
	}

	sched.Advance(DefaultDebounce)

	if len(backend.writes) != 1 {
		t.Fatalf("got %d writes, expected exactly 1: %v", len(backend.writes), backend.writes)
	}
	if backend.writes[0] != (write{DefaultKey, 13}) {
		t.Errorf("write = %+v, expected final value 13", backend.writes[0])
	}
	if s.Pending() {
		t.Error("nothing should be pending after the write")
	}
	if sched.Pending() != 0 {
		t.Errorf("scheduler has %d live timers, expected 0", sched.Pending())
	}
}

func TestStoreIgnoresLowerScores(t *testing.T) {
	backend := newFakeBackend()
	backend.values[DefaultKey] = 10
	sched := clock.NewManual(epoch)
	s := New(backend, sched)

	for _, score := range []int{3, 9, 10} {
		if s.Offer(score) {
			t.Errorf("Offer(%d) should not beat 10", score)
		}
	}

	sched.Advance(time.Second)
	if len(backend.writes) != 0 {
		t.Errorf("unexpected writes: %v", backend.writes)
	}
}

func TestStoreWritesEachQuietPeriod(t *testing.T) {
	backend := newFakeBackend()
	sched := clock.NewManual(epoch)
	s := New(backend, sched, WithDebounce(100*time.Millisecond))

	s.Offer(5)
	sched.Advance(150 * time.Millisecond)
	s.Offer(8)
	sched.Advance(150 * time.Millisecond)

	expected := []write{{DefaultKey, 5}, {DefaultKey, 8}}
	if len(backend.writes) != len(expected) {
		t.Fatalf("writes = %v, expected %v", backend.writes, expected)
	}
	for i := range expected {
		if backend.writes[i] != expected[i] {
			t.Errorf("write %d = %+v, expected %+v", i, backend.writes[i], expected[i])
		}
	}
}

func TestStoreFlush(t *testing.T) {
	backend := newFakeBackend()
	sched := clock.NewManual(epoch)
	s := New(backend, sched, WithKey("runner"))

	s.Offer(42)
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if len(backend.writes) != 1 || backend.writes[0] != (write{"runner", 42}) {
		t.Fatalf("writes = %v, expected one write of 42 under key runner", backend.writes)
	}

	// The cancelled timer must not write again
	sched.Advance(time.Second)
	if len(backend.writes) != 1 {
		t.Errorf("writes = %v, expected no write after flush", backend.writes)
	}

	if err := s.Close(); err != nil {
		t.Errorf("Close() with nothing pending failed: %v", err)
	}
	if len(backend.writes) != 1 {
		t.Errorf("Close() wrote without a pending value: %v", backend.writes)
	}
}

func TestStoreReadErrorStartsFromZero(t *testing.T) {
	backend := newFakeBackend()
	backend.readErr = errors.New("disk gone")

	s := New(backend, clock.NewManual(epoch))
	if s.Best() != 0 {
		t.Errorf("Best() = %d, expected 0 after read error", s.Best())
	}
}

func TestStoreSaveErrorIsReported(t *testing.T) {
	backend := newFakeBackend()
	backend.saveErr = errors.New("read-only")
	s := New(backend, clock.NewManual(epoch))

	s.Offer(7)
	if err := s.Flush(); err == nil {
		t.Error("Flush() should return the backend error")
	}
	if s.Best() != 7 {
		t.Errorf("Best() = %d, expected 7 in memory", s.Best())
	}
}

func TestStoreRetriesAfterSaveError(t *testing.T) {
	backend := newFakeBackend()
	backend.saveErr = errors.New("database is locked")
	sched := clock.NewManual(epoch)
	s := New(backend, sched)

	s.Offer(7)
	sched.Advance(DefaultDebounce)
	if !s.Pending() {
		t.Fatal("failed write should stay pending")
	}

	backend.saveErr = nil
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if len(backend.writes) != 1 || backend.writes[0].score != 7 {
		t.Errorf("writes = %v, expected one write of 7", backend.writes)
	}
	if s.Pending() {
		t.Error("Pending() should be false after a successful Flush")
	}
}

func TestStoreMemoryOnly(t *testing.T) {
	sched := clock.NewManual(epoch)
	s := New(nil, sched)

	if !s.Offer(3) {
		t.Fatal("Offer(3) should be a new best")
	}
	sched.Advance(time.Second)

	if s.Best() != 3 || s.Pending() {
		t.Errorf("Best()=%d Pending()=%v, expected 3 and false", s.Best(), s.Pending())
	}
}
