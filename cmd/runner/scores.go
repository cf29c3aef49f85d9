package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/braille-runner/internal/config"
	"github.com/vovakirdan/braille-runner/internal/platform/tui"
	"github.com/vovakirdan/braille-runner/internal/storage"
)

var (
	flagInteractive bool
	flagAllRuns     bool
	flagClearRuns   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show the best runs",
	Long: `Display the top 10 runs for a difficulty preset (default: normal),
plus the all-time high score and totals across presets.

Examples:
  runner scores
  runner scores hard
  runner scores hard --all
  runner scores easy --clear
  runner scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the scoreboard browser")
	scoresCmd.Flags().BoolVar(&flagAllRuns, "all", false, "List every recorded run, not just the top 10")
	scoresCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "Delete the recorded runs for the preset (the high score is kept)")
}

func runScores(_ *cobra.Command, args []string) {
	preset := config.DifficultyNormal
	if len(args) == 1 {
		preset = config.ParsePreset(args[0])
		if preset == "" {
			fatalf("unknown preset %q (want easy, normal, hard or fixed)", args[0])
		}
	}

	cfg, err := loadRunnerConfig()
	if err != nil {
		fatalf("%v", err)
	}

	// Unlike play, scores cannot do anything without the database
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := terminalSize()
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			warnf("%v", err)
		}
		return
	}

	if flagClearRuns {
		if err := store.ClearRuns(string(preset)); err != nil {
			store.Close()
			fatalf("clearing runs: %v", err)
		}
		fmt.Printf("Cleared runs for %s.\n", preset)
		return
	}

	var runs []storage.RunEntry
	if flagAllRuns {
		runs, err = store.AllRuns(string(preset))
	} else {
		runs, err = store.TopRuns(string(preset), 10)
	}
	if err != nil {
		store.Close()
		fatalf("retrieving runs: %v", err)
	}

	title := color.New(color.FgCyan, color.Bold)
	title.Printf("Best runs - %s\n", preset)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'runner play --difficulty %s' to set the first score!\n", preset)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "When")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	gold := color.New(color.FgYellow, color.Bold)
	for i, run := range runs {
		line := fmt.Sprintf("  %-4d  %-10s  %-5d  %s\n",
			i+1, humanize.Comma(int64(run.Score)), run.Level, humanize.Time(run.CreatedAt))
		if i == 0 {
			gold.Print(line)
			continue
		}
		fmt.Print(line)
	}

	fmt.Println()
	if stats, err := store.Stats(string(preset)); err == nil && stats != nil && stats.RunsCount > 0 {
		fmt.Printf("Runs: %s  Avg: %.1f  Max level: %d\n",
			humanize.Comma(int64(stats.RunsCount)), stats.AvgScore, stats.MaxLevel)
	}
	if best, err := store.HighScore(cfg.HighScore.Key); err == nil {
		fmt.Printf("Best overall: %s\n", humanize.Comma(int64(best)))
	}
	if all, err := store.AllStats(); err == nil && len(all) > 0 {
		var count int
		var total int64
		for _, st := range all {
			count += st.RunsCount
			total += st.TotalScore
		}
		fmt.Printf("All presets: %s runs, %s points\n",
			humanize.Comma(int64(count)), humanize.Comma(total))
	}
}
