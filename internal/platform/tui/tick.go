// Package tui provides the Bubble Tea host for the runner.
// It drains scheduler events on the update loop, maps keys to actions and
// draws the track inside a search-bar styled box.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/braille-runner/internal/clock"
)

// SchedulerMsg carries a due timer callback into Update.
type SchedulerMsg func()

// waitForEvent returns a command that delivers the next scheduler callback.
// It yields nil once the scheduler is closed.
func waitForEvent(sched *clock.Real) tea.Cmd {
	return func() tea.Msg {
		select {
		case fn := <-sched.Events():
			return SchedulerMsg(fn)
		case <-sched.Done():
			return nil
		}
	}
}
