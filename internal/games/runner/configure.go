package runner

import (
	"github.com/vovakirdan/braille-runner/internal/config"
	"github.com/vovakirdan/braille-runner/internal/core"
)

// OptionsFromConfig builds session options from a loaded config.
func OptionsFromConfig(cfg config.RunnerConfig, seed int64, theme core.Theme) Options {
	return Options{
		Runtime: core.RuntimeConfig{
			TrackLength: cfg.Track.Length,
			Seed:        seed,
		},
		Position: cfg.Track.PlayerPosition,
		Spawn: SpawnPolicy{
			GuaranteedGap: cfg.Spawn.GuaranteedGap,
			BiasUnits:     cfg.Spawn.BiasUnits,
			Kinds:         []Slot{ObstacleTop, ObstacleBottom},
		},
		MoveTimeout:  cfg.Player.MoveTimeout,
		MoveCooldown: cfg.Player.MoveCooldown,
		Theme:        theme,
	}
}

// LoopConfigFromConfig builds loop timing from a loaded config.
func LoopConfigFromConfig(cfg config.RunnerConfig) LoopConfig {
	return LoopConfig{
		InitialRate:  cfg.Speed.InitialRate,
		RampBase:     cfg.Speed.RampBase,
		RampInterval: cfg.Speed.RampInterval,
		MaxRate:      cfg.Speed.MaxRate,
		RampEnabled:  cfg.Speed.RampEnabled,
		StartLevel:   cfg.Speed.StartLevel,
	}
}
