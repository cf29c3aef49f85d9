package runner

import (
	"strings"

	"github.com/vovakirdan/braille-runner/internal/core"
)

// Evaluate resolves the player's slot and serializes the whole track.
//
// An empty slot draws the player for its stance. Ducking under a top obstacle
// or jumping over a bottom one draws the matching avoidance glyph. Anything
// else is a crash. Only the player position is substituted; every other slot
// draws its obstacle glyph or the theme's empty placeholder.
func Evaluate(slots []Slot, stance Stance, position int, theme core.Theme) (frame string, crashed bool) {
	glyphs := make([]string, len(slots))
	for i, s := range slots {
		glyphs[i] = slotGlyph(s, theme)
	}

	if position < 0 || position >= len(slots) {
		return strings.Join(glyphs, theme.Separator), false
	}

	switch slot := slots[position]; {
	case slot == Empty:
		glyphs[position] = stanceGlyph(stance, theme)
	case slot == ObstacleTop && stance == Ducking:
		glyphs[position] = theme.DuckUnder
	case slot == ObstacleBottom && stance == Jumping:
		glyphs[position] = theme.JumpOver
	default:
		glyphs[position] = theme.Crash
		crashed = true
	}

	return strings.Join(glyphs, theme.Separator), crashed
}

// slotGlyph returns the glyph drawn for a slot with no player on it.
func slotGlyph(s Slot, theme core.Theme) string {
	switch s {
	case ObstacleTop:
		return theme.ObstacleTop
	case ObstacleBottom:
		return theme.ObstacleBottom
	default:
		return theme.Empty
	}
}

// stanceGlyph returns the player glyph for a stance.
func stanceGlyph(s Stance, theme core.Theme) string {
	switch s {
	case Jumping:
		return theme.Jumping
	case Ducking:
		return theme.Ducking
	default:
		return theme.Standing
	}
}
