package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used by the game view.
var (
	barStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	barCrashStyle = barStyle.
			BorderForeground(lipgloss.Color("9"))
	barPrefixStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	frameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	bestStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	crashStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
)

// Address builds the address-bar text: the track followed by the score tag.
func Address(frame string, score int) string {
	return fmt.Sprintf("?%s⢎[Score:%d]", frame, score)
}

// renderBar draws the track inside a search-bar box.
func renderBar(frame string, score int, crashed bool) string {
	content := barPrefixStyle.Render("?") +
		frameStyle.Render(frame) +
		barPrefixStyle.Render(fmt.Sprintf("⢎[Score:%d]", score))

	if crashed {
		return barCrashStyle.Render(content)
	}
	return barStyle.Render(content)
}

// renderStatus draws the line under the bar.
func renderStatus(h *hud, preset string) string {
	parts := []string{
		fmt.Sprintf("Score %d", h.score),
		bestStyle.Render(fmt.Sprintf("Best %d", h.best)),
		fmt.Sprintf("Level %d (%d/s)", h.level, h.rate),
	}
	if preset != "" {
		parts = append(parts, preset)
	}
	return statusStyle.Render(strings.Join(parts, "  |  "))
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = centerText(line, width)
	}
	return strings.Join(lines, "\n")
}
