package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/braille-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		crashed bool
		want    core.Action
	}{
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, false, core.ActionJump},
		{"space jumps", runeKey(' '), false, core.ActionJump},
		{"w jumps", runeKey('w'), false, core.ActionJump},
		{"down ducks", tea.KeyMsg{Type: tea.KeyDown}, false, core.ActionDuck},
		{"ctrl+down ducks", tea.KeyMsg{Type: tea.KeyCtrlDown}, false, core.ActionDuck},
		{"s ducks", runeKey('s'), false, core.ActionDuck},
		{"enter ignored while running", tea.KeyMsg{Type: tea.KeyEnter}, false, core.ActionNone},
		{"x ignored", runeKey('x'), false, core.ActionNone},
		{"q quits", runeKey('q'), false, core.ActionQuit},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, false, core.ActionBack},
		{"help", runeKey('?'), false, core.ActionHelp},
		{"enter restarts after crash", tea.KeyMsg{Type: tea.KeyEnter}, true, core.ActionRestart},
		{"up restarts after crash", tea.KeyMsg{Type: tea.KeyUp}, true, core.ActionRestart},
		{"q still quits after crash", runeKey('q'), true, core.ActionQuit},
		{"x ignored after crash", runeKey('x'), true, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keys.Action(tt.msg, tt.crashed)
			if got != tt.want {
				t.Errorf("Action(%q, crashed=%v) = %v, want %v", tt.msg.String(), tt.crashed, got, tt.want)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	tests := []struct {
		frame string
		score int
		want  string
	}{
		{"⠗____", 0, "?⠗____⢎[Score:0]"},
		{"💥____", 5, "?💥____⢎[Score:5]"},
		{"", 12, "?⢎[Score:12]"},
	}

	for _, tt := range tests {
		if got := Address(tt.frame, tt.score); got != tt.want {
			t.Errorf("Address(%q, %d) = %q, want %q", tt.frame, tt.score, got, tt.want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText on narrow width = %q, want unchanged", got)
	}
}
