// Package runner implements the braille endless runner: a fixed-length track
// scrolls toward a fixed player who jumps or ducks to avoid obstacles.
// The package is pure game logic; timing comes from an injected clock.Scheduler
// and drawing is a single joined string handed to host callbacks.
package runner

import (
	"github.com/vovakirdan/braille-runner/internal/core"
)

// Callbacks are the optional hooks a host receives. Nil hooks are skipped.
type Callbacks struct {
	OnScore func(score int)            // Once per tick while running
	OnFrame func(frame string)         // Once per tick with the serialized track
	OnCrash func(state core.GameState) // Once, on the crashing tick
}

// Options configure a session.
type Options struct {
	Runtime      core.RuntimeConfig
	Position     int // Player slot index
	Spawn        SpawnPolicy
	MoveTimeout  int
	MoveCooldown int
	Theme        core.Theme
	Source       Source // Optional; replaces the seeded RNG
}

// DefaultOptions returns the classic 30-slot setup with the braille theme.
func DefaultOptions() Options {
	return Options{
		Runtime:      core.DefaultConfig(),
		Position:     0,
		Spawn:        DefaultSpawnPolicy(),
		MoveTimeout:  4,
		MoveCooldown: 1,
		Theme:        BrailleTheme(),
	}
}

// Session is one run: a track, a player and a score, from start to crash.
type Session struct {
	track     *Track
	player    *Player
	spawner   *Spawner
	theme     core.Theme
	position  int
	score     int
	crashed   bool
	frame     string
	callbacks Callbacks
}

// NewSession creates a running session with an empty track.
func NewSession(opts Options, cb Callbacks) *Session {
	var sp *Spawner
	if opts.Source != nil {
		sp = NewSpawnerWithSource(opts.Spawn, opts.Source)
	} else {
		sp = NewSpawner(opts.Spawn, opts.Runtime.Seed)
	}

	s := &Session{
		track:     NewTrack(opts.Runtime.TrackLength),
		player:    NewPlayer(opts.MoveTimeout, opts.MoveCooldown),
		spawner:   sp,
		theme:     opts.Theme,
		position:  opts.Position,
		callbacks: cb,
	}
	if s.position < 0 || s.position >= s.track.Len() {
		s.position = 0
	}

	// Initial frame so hosts have something to draw before the first tick
	s.frame, _ = Evaluate(s.track.slots, s.player.Stance(), s.position, s.theme)
	return s
}

// Tick advances the session by one step and returns whether it is still running.
// A crashed session is frozen: Tick does nothing and fires no callbacks.
func (s *Session) Tick() bool {
	if s.crashed {
		return false
	}

	s.score++
	if s.callbacks.OnScore != nil {
		s.callbacks.OnScore(s.score)
	}

	s.track.Advance(s.spawner)

	frame, crashed := Evaluate(s.track.slots, s.player.Stance(), s.position, s.theme)
	s.frame = frame
	if s.callbacks.OnFrame != nil {
		s.callbacks.OnFrame(frame)
	}

	if crashed {
		s.crashed = true
		if s.callbacks.OnCrash != nil {
			s.callbacks.OnCrash(s.State())
		}
		return false
	}

	s.player.Decay()
	return true
}

// Input applies a player action. Returns true if the stance changed.
func (s *Session) Input(a core.Action) bool {
	if s.crashed {
		return false
	}
	return s.player.Press(a)
}

// Frame returns the most recently rendered track.
func (s *Session) Frame() string {
	return s.frame
}

// Score returns the number of ticks survived.
func (s *Session) Score() int {
	return s.score
}

// Crashed reports whether the session has ended.
func (s *Session) Crashed() bool {
	return s.crashed
}

// Stance returns the player's current stance.
func (s *Session) Stance() Stance {
	return s.player.Stance()
}

// Track returns a copy of the track contents.
func (s *Session) Track() []Slot {
	return s.track.Slots()
}

// Position returns the player's slot index.
func (s *Session) Position() int {
	return s.position
}

// State returns a snapshot for the host.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:   s.score,
		Crashed: s.crashed,
	}
}
