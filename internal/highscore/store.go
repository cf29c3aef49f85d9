// Package highscore keeps the best score across runs and persists it with a
// debounced write, so a climbing score produces one write per quiet period.
package highscore

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/braille-runner/internal/clock"
)

// Defaults for the persisted value.
const (
	DefaultKey      = "highestScore"
	DefaultDebounce = 200 * time.Millisecond
)

// Backend persists a single integer per key.
type Backend interface {
	HighScore(key string) (int, error)
	SetHighScore(key string, score int) error
}

// Option configures a Store.
type Option func(*Store)

// WithKey sets the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithDebounce sets the quiet period before a pending value is written.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) {
		if d >= 0 {
			s.debounce = d
		}
	}
}

// WithLogger sets the logger for write failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Store is the process-wide best score. A nil backend keeps it in memory only.
type Store struct {
	mu       sync.Mutex
	backend  Backend
	sched    clock.Scheduler
	key      string
	debounce time.Duration
	logger   *log.Logger

	best    int
	pending bool
	timer   clock.Handle
}

// New creates a store and reads the persisted value once.
// A failed read starts from 0.
func New(backend Backend, sched clock.Scheduler, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		sched:    sched,
		key:      DefaultKey,
		debounce: DefaultDebounce,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.backend != nil {
		best, err := s.backend.HighScore(s.key)
		if err != nil {
			s.logger.Warn("cannot read high score", "key", s.key, "err", err)
		} else {
			s.best = best
		}
	}
	return s
}

// Key returns the storage key.
func (s *Store) Key() string {
	return s.key
}

// Best returns the best score seen so far, persisted or not.
func (s *Store) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best
}

// Pending reports whether a write is waiting for the debounce timer.
func (s *Store) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Offer records score if it beats the best and restarts the debounce timer.
// Returns true when score is a new best.
func (s *Store) Offer(score int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.best {
		return false
	}
	s.best = score
	s.pending = true

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = s.sched.After(s.debounce, s.commit)
	return true
}

// commit runs when the debounce timer fires.
func (s *Store) commit() {
	if err := s.write(); err != nil {
		s.logger.Error("cannot save high score", "key", s.key, "err", err)
	}
}

// write persists the pending value, if any.
func (s *Store) write() error {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return nil
	}
	value := s.best
	s.pending = false
	s.mu.Unlock()

	if s.backend == nil {
		return nil
	}
	if err := s.backend.SetHighScore(s.key, value); err != nil {
		// Keep it pending so the next Offer or Flush retries
		s.mu.Lock()
		s.pending = true
		s.mu.Unlock()
		return err
	}
	s.logger.Debug("high score saved", "key", s.key, "score", value)
	return nil
}

// Flush cancels the debounce timer and writes a pending value now.
func (s *Store) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.write()
}

// Close flushes the pending value. The store must not be used afterwards.
func (s *Store) Close() error {
	return s.Flush()
}
