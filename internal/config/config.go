// Package config provides YAML-based runner configuration loading and
// difficulty presets.
package config

import "time"

// RunnerConfig contains all configuration for the braille runner.
type RunnerConfig struct {
	Track     TrackConfig     `yaml:"track"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Player    PlayerConfig    `yaml:"player"`
	Speed     SpeedConfig     `yaml:"speed"`
	HighScore HighScoreConfig `yaml:"high_score"`
	Theme     string          `yaml:"theme"` // Registered theme ID
}

// TrackConfig defines the track geometry.
type TrackConfig struct {
	Length         int `yaml:"length"`
	PlayerPosition int `yaml:"player_position"`
}

// SpawnConfig defines obstacle generation.
type SpawnConfig struct {
	GuaranteedGap int `yaml:"guaranteed_gap"` // Empty slots required after an obstacle
	BiasUnits     int `yaml:"bias_units"`     // Extra empty outcomes in each draw
}

// PlayerConfig defines the input lock, in ticks.
type PlayerConfig struct {
	MoveTimeout  int `yaml:"move_timeout"`
	MoveCooldown int `yaml:"move_cooldown"`
}

// SpeedConfig defines tick timing and the difficulty ramp.
type SpeedConfig struct {
	InitialRate  int           `yaml:"initial_rate"` // Ticks per second at level 0
	RampBase     int           `yaml:"ramp_base"`    // Level n runs at ramp_base+n ticks per second
	RampInterval time.Duration `yaml:"ramp_interval"`
	MaxRate      int           `yaml:"max_rate"` // 0 = unbounded
	RampEnabled  bool          `yaml:"ramp_enabled"`
	StartLevel   int           `yaml:"start_level"`
}

// HighScoreConfig defines high score persistence.
type HighScoreConfig struct {
	Key      string        `yaml:"key"`
	Debounce time.Duration `yaml:"debounce"`
}

// Normalize replaces out-of-range values with defaults.
// Bad values never fail a run; they fall back silently.
func (c *RunnerConfig) Normalize() {
	d := DefaultRunnerConfig()

	if c.Track.Length < 1 {
		c.Track.Length = d.Track.Length
	}
	if c.Track.PlayerPosition < 0 || c.Track.PlayerPosition >= c.Track.Length {
		c.Track.PlayerPosition = d.Track.PlayerPosition
	}

	if c.Spawn.GuaranteedGap < 0 {
		c.Spawn.GuaranteedGap = d.Spawn.GuaranteedGap
	}
	if c.Spawn.BiasUnits < 0 {
		c.Spawn.BiasUnits = d.Spawn.BiasUnits
	}

	if c.Player.MoveTimeout < 1 {
		c.Player.MoveTimeout = d.Player.MoveTimeout
	}
	if c.Player.MoveCooldown < 0 {
		c.Player.MoveCooldown = d.Player.MoveCooldown
	}

	if c.Speed.InitialRate < 1 {
		c.Speed.InitialRate = d.Speed.InitialRate
	}
	if c.Speed.RampBase < 1 {
		c.Speed.RampBase = d.Speed.RampBase
	}
	if c.Speed.RampInterval <= 0 {
		c.Speed.RampInterval = d.Speed.RampInterval
	}
	if c.Speed.MaxRate < 0 {
		c.Speed.MaxRate = 0
	}
	if c.Speed.StartLevel < 0 {
		c.Speed.StartLevel = 0
	}

	if c.HighScore.Key == "" {
		c.HighScore.Key = d.HighScore.Key
	}
	if c.HighScore.Debounce <= 0 {
		c.HighScore.Debounce = d.HighScore.Debounce
	}

	if c.Theme == "" {
		c.Theme = d.Theme
	}
}
