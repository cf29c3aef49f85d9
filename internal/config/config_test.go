package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded defaults differ from DefaultRunnerConfig()\n got: %+v\nwant: %+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("track:\n  length: 12\nspeed:\n  ramp_interval: 2s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Track.Length != 12 {
		t.Errorf("Track.Length = %d, expected 12", cfg.Track.Length)
	}
	if cfg.Speed.RampInterval != 2*time.Second {
		t.Errorf("Speed.RampInterval = %v, expected 2s", cfg.Speed.RampInterval)
	}
	// Untouched keys keep defaults
	if cfg.Spawn.GuaranteedGap != 4 {
		t.Errorf("Spawn.GuaranteedGap = %d, expected default 4", cfg.Spawn.GuaranteedGap)
	}
	if !cfg.Speed.RampEnabled {
		t.Error("Speed.RampEnabled should keep its default true")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("track: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Error("expected parse error")
	}
	if cfg != DefaultRunnerConfig() {
		t.Error("parse failure should return defaults")
	}
}

func TestNormalize(t *testing.T) {
	cfg := RunnerConfig{
		Track:  TrackConfig{Length: 10, PlayerPosition: 10},
		Spawn:  SpawnConfig{GuaranteedGap: -1, BiasUnits: -3},
		Player: PlayerConfig{MoveTimeout: 0, MoveCooldown: -1},
		Speed:  SpeedConfig{InitialRate: 0, RampBase: -2, MaxRate: -1, StartLevel: -5},
	}
	cfg.Normalize()

	d := DefaultRunnerConfig()
	if cfg.Track.Length != 10 {
		t.Errorf("valid Track.Length changed to %d", cfg.Track.Length)
	}
	if cfg.Track.PlayerPosition != 0 {
		t.Errorf("out-of-range PlayerPosition = %d, expected 0", cfg.Track.PlayerPosition)
	}
	if cfg.Spawn != d.Spawn {
		t.Errorf("Spawn = %+v, expected %+v", cfg.Spawn, d.Spawn)
	}
	if cfg.Player != d.Player {
		t.Errorf("Player = %+v, expected %+v", cfg.Player, d.Player)
	}
	if cfg.Speed.InitialRate != 4 || cfg.Speed.RampBase != 5 || cfg.Speed.RampInterval != 4*time.Second {
		t.Errorf("Speed not restored: %+v", cfg.Speed)
	}
	if cfg.Speed.MaxRate != 0 || cfg.Speed.StartLevel != 0 {
		t.Errorf("MaxRate/StartLevel not clamped: %+v", cfg.Speed)
	}
	if cfg.HighScore != d.HighScore {
		t.Errorf("HighScore = %+v, expected %+v", cfg.HighScore, d.HighScore)
	}
	if cfg.Theme != "braille" {
		t.Errorf("Theme = %q, expected braille", cfg.Theme)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		rampEnabled bool
		startLevel  int
	}{
		{DifficultyEasy, true, 0},
		{DifficultyNormal, true, 3},
		{DifficultyHard, true, 8},
		{DifficultyFixed, false, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Speed.RampEnabled != tc.rampEnabled {
				t.Errorf("RampEnabled = %v, expected %v", cfg.Speed.RampEnabled, tc.rampEnabled)
			}
			if cfg.Speed.StartLevel != tc.startLevel {
				t.Errorf("StartLevel = %d, expected %d", cfg.Speed.StartLevel, tc.startLevel)
			}
		})
	}

	cfg := DefaultRunnerConfig()
	cfg.Speed.StartLevel = 2
	ApplyPreset(&cfg, "")
	if cfg.Speed.StartLevel != 2 {
		t.Error("empty preset should leave config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
