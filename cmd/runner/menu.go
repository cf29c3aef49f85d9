package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/braille-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, play and view scores",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to run.
Esc during a run returns to the menu; Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Run
  Tab          - Scores
  Q            - Quit

Examples:
  runner menu
  runner menu --theme ascii
  runner menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadRunnerConfig()
	if err != nil {
		fatalf("%v", err)
	}
	theme, err := resolveTheme(cfg.Theme)
	if err != nil {
		fatalf("%v", err)
	}

	logger, closeLog := openLogger("runner")
	defer closeLog()

	store := openStoreOrWarn()
	width, height := terminalSize()

	for {
		best := 0
		if store != nil {
			if b, hsErr := store.HighScore(cfg.HighScore.Key); hsErr == nil {
				best = b
			}
		}

		menuResult, err := tui.RunMenu(width, best)
		if err != nil {
			warnf("%v", err)
			break
		}
		width = menuResult.Width

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				warnf("%v", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		back, runErr := tui.Run(tui.GameConfig{
			Runner: cfg,
			Preset: menuResult.Preset,
			Seed:   flagSeed,
			Theme:  theme,
		}, store, logger)
		if runErr != nil {
			warnf("running game: %v", runErr)
		}
		if !back {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
