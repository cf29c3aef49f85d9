package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/braille-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start running",
	Long: `Start a run right away.

Controls:
  Up/Space/W       - Jump (over low obstacles)
  Down/Ctrl+Down/S - Duck (under high obstacles)
  Enter/any move   - Run again after a crash
  ?                - More keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at 4 steps/s, speed up every 4 seconds
  normal - Start at level 3, keep speeding up (default)
  hard   - Start at level 8, keep speeding up
  fixed  - No speed up, stays at the config's initial rate

Examples:
  runner play
  runner play --difficulty hard
  runner play --theme ascii --length 40
  runner play --config ./my-runner.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadRunnerConfig()
	if err != nil {
		fatalf("%v", err)
	}
	preset, err := parseDifficulty()
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

	_, runErr := tui.Run(tui.GameConfig{
		Runner: cfg,
		Preset: preset,
		Seed:   flagSeed,
		Theme:  theme,
	}, store, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatalf("running game: %v", runErr)
	}
}
