// runner is an endless runner drawn in braille glyphs, played in the terminal.
//
// Usage:
//
//	runner play              - Run
//	runner menu              - Pick a difficulty, play, look at scores
//	runner scores [preset]   - Show the best runs
//	runner list              - List glyph themes
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--length <n>        - Track length in slots (default: from config, 30)
//	--seed <value>      - Set RNG seed for reproducible tracks
//	--db <path>         - Set database path (default: ~/.braille-runner/scores.db)
//	--config <path>     - Custom runner config YAML
//	--difficulty <name> - easy, normal, hard, fixed
//	--theme <id>        - Glyph theme
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the built-in themes
	_ "github.com/vovakirdan/braille-runner/internal/games/runner"
)

var (
	// Global flags
	flagLength     int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Braille Runner - jump and duck through a braille track",
	Long: `Braille Runner is an endless runner drawn with braille characters.
The track scrolls toward you; jump over low obstacles, duck under high ones.

Available commands:
  play     - Start running right away
  menu     - Pick a difficulty, play, view scores
  scores   - View the best runs
  list     - Show glyph themes
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play --difficulty hard
  runner menu
  runner scores normal
  runner serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagLength, "length", 0, "Track length in slots (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.braille-runner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal (default), hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Glyph theme (see 'runner list')")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
