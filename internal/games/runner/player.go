package runner

import "github.com/vovakirdan/braille-runner/internal/core"

// Stance is the player's avoidance pose.
type Stance uint8

const (
	Standing Stance = iota
	Jumping
	Ducking
)

// String returns a human-readable name for the stance.
func (s Stance) String() string {
	switch s {
	case Standing:
		return "Standing"
	case Jumping:
		return "Jumping"
	case Ducking:
		return "Ducking"
	default:
		return "Unknown"
	}
}

// Player tracks the stance and the input lock.
//
// An accepted move sets the lock to moveTimeout ticks; moves while the lock is
// positive are dropped. The pose is held until the lock decays to
// moveCooldown, then the player stands again, so every jump or duck stays
// visible for moveTimeout-moveCooldown ticks.
type Player struct {
	stance       Stance
	lock         int
	moveTimeout  int
	moveCooldown int
}

// NewPlayer creates a standing player.
func NewPlayer(moveTimeout, moveCooldown int) *Player {
	return &Player{
		stance:       Standing,
		moveTimeout:  moveTimeout,
		moveCooldown: moveCooldown,
	}
}

// Stance returns the current stance.
func (p *Player) Stance() Stance {
	return p.stance
}

// Lock returns the remaining input lock in ticks.
func (p *Player) Lock() int {
	return p.lock
}

// Press applies a move. Returns true if the stance changed.
// Non-move actions are ignored and do not touch the lock.
func (p *Player) Press(a core.Action) bool {
	if p.lock > 0 || !a.IsMove() {
		return false
	}

	p.stance = Jumping
	if a == core.ActionDuck {
		p.stance = Ducking
	}

	p.lock = p.moveTimeout
	return true
}

// Decay advances the lock by one tick and reverts the pose when it runs out.
func (p *Player) Decay() {
	if p.lock > 0 {
		p.lock--
	}
	if p.lock <= p.moveCooldown {
		p.stance = Standing
	}
}
