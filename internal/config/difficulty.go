package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset maps a flag value to a preset. Unknown or empty values return
// "" so the config file decides.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Description returns a one-line summary for menus and help.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Start slow, speed up every few seconds"
	case DifficultyNormal:
		return "Start at level 3, keep speeding up"
	case DifficultyHard:
		return "Start at level 8, keep speeding up"
	case DifficultyFixed:
		return "Config speed, no ramp"
	default:
		return "Use config file settings"
	}
}

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 0
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 8
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables the ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Speed.RampEnabled = false
		return
	}
	cfg.Speed.RampEnabled = true
	cfg.Speed.StartLevel = StartLevelForPreset(preset)
}
