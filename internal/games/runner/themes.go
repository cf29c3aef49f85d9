package runner

import (
	"github.com/vovakirdan/braille-runner/internal/core"
	"github.com/vovakirdan/braille-runner/internal/registry"
)

// Theme IDs
const (
	ThemeBraille = "braille"
	ThemeASCII   = "ascii"
)

// BrailleTheme returns the braille-pattern glyphs. Empty slots draw nothing,
// so runs of empty space collapse into underscores.
func BrailleTheme() core.Theme {
	return core.Theme{
		Name:           ThemeBraille,
		ObstacleTop:    "⠛",
		ObstacleBottom: "⣤",
		Standing:       "⠗",
		Jumping:        "⠉",
		Ducking:        "⠤",
		JumpOver:       "⣭",
		DuckUnder:      "⣛",
		Crash:          "💥",
		Empty:          "",
		Separator:      "_",
	}
}

// ASCIITheme returns plain ASCII glyphs for terminals without braille fonts.
func ASCIITheme() core.Theme {
	return core.Theme{
		Name:           ThemeASCII,
		ObstacleTop:    "=",
		ObstacleBottom: "#",
		Standing:       "i",
		Jumping:        "'",
		Ducking:        ".",
		JumpOver:       "}",
		DuckUnder:      "{",
		Crash:          "X",
		Empty:          "",
		Separator:      "_",
	}
}

// Register the built-in themes
func init() {
	registry.Register(ThemeBraille, BrailleTheme)
	registry.Register(ThemeASCII, ASCIITheme)
}
