package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Track: TrackConfig{
			Length:         30,
			PlayerPosition: 0,
		},
		Spawn: SpawnConfig{
			GuaranteedGap: 4,
			BiasUnits:     6,
		},
		Player: PlayerConfig{
			MoveTimeout:  4,
			MoveCooldown: 1,
		},
		Speed: SpeedConfig{
			InitialRate:  4,
			RampBase:     5,
			RampInterval: 4 * time.Second,
			MaxRate:      0,
			RampEnabled:  true,
			StartLevel:   0,
		},
		HighScore: HighScoreConfig{
			Key:      "highestScore",
			Debounce: 200 * time.Millisecond,
		},
		Theme: "braille",
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
