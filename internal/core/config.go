// Package core provides fundamental types shared by the runner and its hosts.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// RuntimeConfig contains configuration passed to a session at creation.
type RuntimeConfig struct {
	TrackLength int   // Number of slots on the track
	Seed        int64 // RNG seed for deterministic spawning (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TrackLength: 30,
		Seed:        0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a session.
// Returned to hosts so they never reach into session internals.
type GameState struct {
	Score   int  // Ticks survived
	Crashed bool // Whether the session has ended
	Level   int  // Difficulty level reached by the loop
}
