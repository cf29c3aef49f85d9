package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/braille-runner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all glyph themes",
	Long:  `Shows every registered glyph theme with a sample of its glyphs.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	themes := registry.List()

	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Available themes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Preview")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-------")

	id := color.New(color.FgCyan)
	for _, t := range themes {
		fmt.Printf("  %s  %s\n", id.Sprintf("%-*s", maxIDLen, t.ID), t.Preview)
	}

	fmt.Println()
	fmt.Println("Run 'runner play --theme <id>' to use a theme.")
}
