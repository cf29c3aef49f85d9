package tui

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/braille-runner/internal/clock"
	"github.com/vovakirdan/braille-runner/internal/config"
	"github.com/vovakirdan/braille-runner/internal/core"
	"github.com/vovakirdan/braille-runner/internal/games/runner"
	"github.com/vovakirdan/braille-runner/internal/highscore"
	"github.com/vovakirdan/braille-runner/internal/storage"
)

// GameConfig selects what a Model plays.
type GameConfig struct {
	Runner config.RunnerConfig
	Preset config.DifficultyPreset
	Seed   int64
	Theme  core.Theme
}

// hud holds what the loop callbacks report.
type hud struct {
	score   int
	best    int
	level   int
	rate    int
	frame   string
	crashed bool
	newBest bool
}

// play owns the loop, its scheduler and the high score store.
// Model copies share it by pointer. mu serializes loop access between the
// update loop and a shutdown coming from another goroutine.
type play struct {
	loop   *runner.Loop
	sched  *clock.Real
	best   *highscore.Store
	store  *storage.Store
	logger *log.Logger
	preset config.DifficultyPreset
	hud    hud

	mu     sync.Mutex
	closed bool
}

func newPlay(gc GameConfig, store *storage.Store, logger *log.Logger) *play {
	cfg := gc.Runner
	cfg.Normalize()

	// Runs are ranked per preset, so the label must match the speed applied
	preset := gc.Preset
	if preset == "" {
		preset = config.DifficultyNormal
	}
	config.ApplyPreset(&cfg, preset)

	theme := gc.Theme
	if !theme.Complete() {
		theme = runner.BrailleTheme()
	}

	p := &play{
		sched:  clock.NewReal(),
		store:  store,
		logger: logger,
		preset: preset,
	}

	// A nil *storage.Store must not become a non-nil Backend
	var backend highscore.Backend
	if store != nil {
		backend = store
	}
	p.best = highscore.New(backend, p.sched,
		highscore.WithKey(cfg.HighScore.Key),
		highscore.WithDebounce(cfg.HighScore.Debounce),
		highscore.WithLogger(logger),
	)

	opts := runner.OptionsFromConfig(cfg, gc.Seed, theme)
	p.loop = runner.NewLoop(p.sched, opts, runner.LoopConfigFromConfig(cfg), runner.Callbacks{
		OnScore: p.onScore,
		OnFrame: p.onFrame,
		OnCrash: p.onCrash,
	})
	p.reset()

	return p
}

// onScore runs once per tick.
func (p *play) onScore(score int) {
	p.hud.score = score
	p.hud.level = p.loop.Level()
	p.hud.rate = p.loop.Rate()
	if p.best.Offer(score) {
		p.hud.newBest = true
	}
}

// onFrame runs once per tick with the serialized track.
func (p *play) onFrame(frame string) {
	p.hud.frame = frame
}

// onCrash records the finished run.
func (p *play) onCrash(state core.GameState) {
	p.hud.crashed = true
	p.hud.level = state.Level

	p.logger.Info("run ended", "score", state.Score, "level", state.Level, "preset", p.preset)

	if p.store != nil && state.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		p.store.SaveRun(storage.RunEntry{
			Preset: string(p.preset),
			Score:  state.Score,
			Level:  state.Level,
		})
	}
}

// reset mirrors a fresh session into the hud.
func (p *play) reset() {
	st := p.loop.State()
	p.hud = hud{
		score: st.Score,
		best:  p.best.Best(),
		level: st.Level,
		rate:  p.loop.Rate(),
		frame: p.loop.Session().Frame(),
	}
}

// run executes fn against the loop unless the play has been shut down.
func (p *play) run(fn func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false
	}
	fn()
	return true
}

// shutdown stops the timers and persists a pending high score.
// Safe to call more than once and from a goroutine other than Update.
func (p *play) shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true

	p.sched.Close()
	p.loop.Stop()
	if err := p.best.Close(); err != nil {
		p.logger.Error("cannot save high score", "err", err)
	}
}

// Model is the Bubble Tea model for one player's runner.
type Model struct {
	play     *play
	keys     GameKeyMap
	help     help.Model
	width    int
	embedded bool // Back returns to a parent model instead of quitting

	quitting   bool
	backToMenu bool
}

// NewModel creates a model with its own wall-clock scheduler and high score store.
// store may be nil to play without persistence.
func NewModel(gc GameConfig, store *storage.Store, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		play: newPlay(gc, store, logger),
		keys: DefaultGameKeyMap(),
		help: help.New(),
	}
}

// Init starts the loop.
func (m Model) Init() tea.Cmd {
	m.play.run(m.play.loop.Start)
	return tea.Batch(waitForEvent(m.play.sched), m.titleCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SchedulerMsg:
		ran := m.play.run(func() {
			msg()
			m.play.hud.best = m.play.best.Best()
		})
		if !ran {
			return m, nil
		}
		return m, tea.Batch(waitForEvent(m.play.sched), m.titleCmd())

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.Action(msg, m.play.hud.crashed); a {
	case core.ActionQuit:
		m.quitting = true
		m.play.shutdown()
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		m.play.shutdown()
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionRestart:
		m.play.run(func() {
			m.play.loop.Restart()
			m.play.reset()
		})
		return m, m.titleCmd()

	case core.ActionJump, core.ActionDuck:
		m.play.run(func() { m.play.loop.Input(a) })
	}

	return m, nil
}

// titleCmd mirrors the address bar into the terminal title.
func (m Model) titleCmd() tea.Cmd {
	return tea.SetWindowTitle(Address(m.play.hud.frame, m.play.hud.score))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	h := &m.play.hud

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("braille runner"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(renderBar(h.frame, h.score, h.crashed), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(renderStatus(h, string(m.play.preset)), m.width))
	b.WriteString("\n\n")

	if h.crashed {
		msg := "CRASHED!"
		if h.newBest {
			msg = "CRASHED! New best score."
		}
		b.WriteString(centerText(crashStyle.Render(msg), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(helpStyle.Render("up/space/w/down/s/enter: run again"), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// State returns a snapshot of the current run.
func (m Model) State() core.GameState {
	return m.play.loop.State()
}

// Best returns the best score seen by this model.
func (m Model) Best() int {
	return m.play.best.Best()
}

// Close stops the model's timers and saves a pending high score.
func (m Model) Close() {
	m.play.shutdown()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game.
// Returns true if the player asked to go back to the menu.
func Run(gc GameConfig, store *storage.Store, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(gc, store, logger)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), err
	}
	return false, err
}
