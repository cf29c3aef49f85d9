package core

// Theme is the immutable glyph table used to draw a track.
// Sessions receive a Theme by value and never modify it.
type Theme struct {
	Name string

	ObstacleTop    string // Hanging obstacle, avoided by ducking
	ObstacleBottom string // Ground obstacle, avoided by jumping

	Standing string
	Jumping  string
	Ducking  string

	JumpOver  string // Player jumping over a bottom obstacle
	DuckUnder string // Player ducking under a top obstacle
	Crash     string

	Empty     string // Placeholder for an empty slot
	Separator string // Joins slots into a single line
}

// Complete reports whether every glyph a frame can contain is set.
// Empty is allowed to be blank.
func (t Theme) Complete() bool {
	for _, g := range []string{
		t.ObstacleTop, t.ObstacleBottom,
		t.Standing, t.Jumping, t.Ducking,
		t.JumpOver, t.DuckUnder, t.Crash,
	} {
		if g == "" {
			return false
		}
	}
	return true
}
