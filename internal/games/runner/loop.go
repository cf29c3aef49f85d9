package runner

import (
	"time"

	"github.com/vovakirdan/braille-runner/internal/clock"
	"github.com/vovakirdan/braille-runner/internal/core"
)

// LoopConfig controls tick timing and the difficulty ramp.
type LoopConfig struct {
	InitialRate  int           // Ticks per second at level 0
	RampBase     int           // Level n ticks at RampBase+n per second
	RampInterval time.Duration // Wall time between level ups
	MaxRate      int           // Cap on ticks per second (0 = unbounded)
	RampEnabled  bool
	StartLevel   int
}

// DefaultLoopConfig returns 4 ticks/s, then 5+level ticks/s every 4 seconds.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		InitialRate:  4,
		RampBase:     5,
		RampInterval: 4 * time.Second,
		MaxRate:      0,
		RampEnabled:  true,
		StartLevel:   0,
	}
}

// Rate returns the tick rate for a level.
func (c LoopConfig) Rate(level int) int {
	rate := c.InitialRate
	if level > 0 {
		rate = c.RampBase + level
	}
	if c.MaxRate > 0 && rate > c.MaxRate {
		rate = c.MaxRate
	}
	if rate < 1 {
		rate = 1
	}
	return rate
}

// Period returns the tick period for a level.
func (c LoopConfig) Period(level int) time.Duration {
	return time.Second / time.Duration(c.Rate(level))
}

// Loop drives a session on a scheduler.
//
// Two timers run while a session is alive: the tick timer advances the
// session, and the slower ramp timer raises the level and reschedules the tick
// timer at the faster period. A crash stops the tick timer; the ramp timer
// notices on its next fire and stops itself.
type Loop struct {
	sched    clock.Scheduler
	opts     Options
	cfg      LoopConfig
	cb       Callbacks
	session  *Session
	tick     clock.Handle
	ramp     clock.Handle
	level    int
	restarts int
}

// NewLoop creates a loop with a fresh session. Call Start to begin ticking.
func NewLoop(sched clock.Scheduler, opts Options, cfg LoopConfig, cb Callbacks) *Loop {
	l := &Loop{
		sched: sched,
		opts:  opts,
		cfg:   cfg,
		cb:    cb,
		level: cfg.StartLevel,
	}
	l.session = l.newSession()
	return l
}

// newSession builds a session whose crash hook reports the loop level.
func (l *Loop) newSession() *Session {
	opts := l.opts
	if opts.Runtime.Seed != 0 {
		opts.Runtime.Seed += int64(l.restarts)
	}

	cb := l.cb
	cb.OnCrash = func(state core.GameState) {
		state.Level = l.level
		if l.cb.OnCrash != nil {
			l.cb.OnCrash(state)
		}
	}
	return NewSession(opts, cb)
}

// Start schedules the tick and ramp timers. No-op while already running
// or once the session has crashed.
func (l *Loop) Start() {
	if l.Running() || l.session.Crashed() {
		return
	}

	l.tick = l.sched.Every(l.cfg.Period(l.level), l.onTick)
	if l.cfg.RampEnabled && l.cfg.RampInterval > 0 {
		l.ramp = l.sched.Every(l.cfg.RampInterval, l.onRamp)
	}
}

// onTick advances the session and halts the tick timer on a crash.
func (l *Loop) onTick() {
	if !l.session.Tick() {
		l.tick.Stop()
	}
}

// onRamp raises the level while the tick timer is alive.
func (l *Loop) onRamp() {
	if l.tick == nil || l.tick.Stopped() {
		l.ramp.Stop()
		return
	}

	before := l.cfg.Period(l.level)
	l.level++
	after := l.cfg.Period(l.level)
	if after == before {
		return
	}

	l.tick.Stop()
	l.tick = l.sched.Every(after, l.onTick)
}

// Input forwards a player action to the session.
func (l *Loop) Input(a core.Action) bool {
	return l.session.Input(a)
}

// Stop cancels both timers. The session keeps its last state.
func (l *Loop) Stop() {
	if l.tick != nil {
		l.tick.Stop()
	}
	if l.ramp != nil {
		l.ramp.Stop()
	}
}

// Restart discards the current session and starts a new one with the same
// configuration: empty track, standing player, score 0, starting level.
func (l *Loop) Restart() {
	l.Stop()
	l.restarts++
	l.level = l.cfg.StartLevel
	l.session = l.newSession()
	l.Start()
}

// Running reports whether the tick timer is alive.
func (l *Loop) Running() bool {
	return l.tick != nil && !l.tick.Stopped()
}

// Level returns the current difficulty level.
func (l *Loop) Level() int {
	return l.level
}

// Rate returns the current tick rate in ticks per second.
func (l *Loop) Rate() int {
	return l.cfg.Rate(l.level)
}

// Session returns the current session.
func (l *Loop) Session() *Session {
	return l.session
}

// State returns a snapshot of the current session including the level.
func (l *Loop) State() core.GameState {
	st := l.session.State()
	st.Level = l.level
	return st
}
