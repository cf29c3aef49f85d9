package runner

import (
	"math/rand"
	"time"
)

// Source is the random draw the spawner depends on.
// *rand.Rand satisfies it; tests substitute scripted draws.
type Source interface {
	Intn(n int) int
}

// SpawnPolicy configures obstacle generation.
type SpawnPolicy struct {
	// GuaranteedGap is the number of trailing slots that must be empty
	// before another obstacle may spawn.
	GuaranteedGap int
	// BiasUnits are extra draw outcomes that all produce empty space.
	BiasUnits int
	// Kinds are the obstacles that can spawn, each one draw outcome.
	Kinds []Slot
}

// DefaultSpawnPolicy returns a gap of 4 and a 2-in-8 obstacle chance.
func DefaultSpawnPolicy() SpawnPolicy {
	return SpawnPolicy{
		GuaranteedGap: 4,
		BiasUnits:     6,
		Kinds:         []Slot{ObstacleTop, ObstacleBottom},
	}
}

// WeightDenominator returns the size of the random draw space.
func (p SpawnPolicy) WeightDenominator() int {
	return len(p.Kinds) + p.BiasUnits
}

// Spawner decides which slot enters the track each tick.
type Spawner struct {
	policy SpawnPolicy
	src    Source
}

// NewSpawner creates a spawner drawing from a seeded RNG.
// A zero seed uses the current time.
func NewSpawner(policy SpawnPolicy, seed int64) *Spawner {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewSpawnerWithSource(policy, rand.New(rand.NewSource(seed)))
}

// NewSpawnerWithSource creates a spawner drawing from src.
// Negative gap and bias values are treated as zero.
func NewSpawnerWithSource(policy SpawnPolicy, src Source) *Spawner {
	if policy.GuaranteedGap < 0 {
		policy.GuaranteedGap = 0
	}
	if policy.BiasUnits < 0 {
		policy.BiasUnits = 0
	}
	kinds := make([]Slot, len(policy.Kinds))
	copy(kinds, policy.Kinds)
	policy.Kinds = kinds

	return &Spawner{policy: policy, src: src}
}

// Policy returns the spawn policy in use.
func (s *Spawner) Policy() SpawnPolicy {
	return s.policy
}

// Next returns the slot to append after prefix.
// Any obstacle within the last GuaranteedGap slots forces empty space;
// otherwise one uniform draw picks an obstacle kind or empty space.
func (s *Spawner) Next(prefix []Slot) Slot {
	start := len(prefix) - s.policy.GuaranteedGap
	if start < 0 {
		start = 0
	}
	for _, slot := range prefix[start:] {
		if slot.IsObstacle() {
			return Empty
		}
	}

	space := s.policy.WeightDenominator()
	if space <= 0 {
		return Empty
	}

	draw := s.src.Intn(space)
	if draw < len(s.policy.Kinds) {
		return s.policy.Kinds[draw]
	}
	return Empty
}
