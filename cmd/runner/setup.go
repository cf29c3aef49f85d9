package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/vovakirdan/braille-runner/internal/config"
	"github.com/vovakirdan/braille-runner/internal/core"
	"github.com/vovakirdan/braille-runner/internal/registry"
	"github.com/vovakirdan/braille-runner/internal/storage"
)

var (
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed, color.Bold)
)

// warnf prints a yellow warning to stderr.
func warnf(format string, args ...any) {
	warnColor.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// fatalf prints a red error to stderr and exits.
func fatalf(format string, args ...any) {
	errorColor.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadRunnerConfig loads the config file and applies the global flag overrides.
func loadRunnerConfig() (config.RunnerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagLength > 0 {
		cfg.Track.Length = flagLength
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	cfg.Normalize()
	return cfg, nil
}

// parseDifficulty validates --difficulty.
func parseDifficulty() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return "", nil
	}
	preset := config.ParsePreset(flagDifficulty)
	if preset == "" {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return preset, nil
}

// resolveTheme looks up the configured theme.
func resolveTheme(id string) (core.Theme, error) {
	if !registry.Exists(id) {
		return core.Theme{}, fmt.Errorf("unknown theme %q; run 'runner list' to see themes", id)
	}
	return registry.Create(id)
}

// openLogger returns a logger writing to --log-file, or discarding when unset.
// TUI modes never log to the terminal they draw on.
func openLogger(prefix string) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			warnf("could not open log file: %v", err)
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn
}

// openStoreOrWarn opens the scores database. The game still works without it.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		warnf("could not open scores database: %v", err)
		return nil
	}
	return store
}

// terminalSize returns the terminal size, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
