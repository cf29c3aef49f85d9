// Package registry provides a global registry for glyph themes.
// Themes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/braille-runner/internal/core"
)

// ThemeInfo contains metadata about a registered theme.
type ThemeInfo struct {
	ID      string
	Preview string // Sample frame drawn with the theme
}

// Factory is a function that returns a theme.
type Factory func() core.Theme

var (
	factories = make(map[string]Factory)
	previews  = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a theme factory to the registry.
// Typically called from an init() function.
// Panics if a theme with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: theme %q already registered", id))
	}

	factories[id] = f

	// Build a preview from a temporary instance
	t := f()
	previews[id] = preview(t)
}

// preview lays out every glyph of a theme on one line.
func preview(t core.Theme) string {
	return t.Standing + t.Separator + t.ObstacleBottom + t.Separator + t.JumpOver +
		t.Separator + t.ObstacleTop + t.Separator + t.DuckUnder + t.Separator + t.Crash
}

// List returns information about all registered themes, sorted by ID.
func List() []ThemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ThemeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ThemeInfo{
			ID:      id,
			Preview: previews[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns the theme registered under id.
// Returns an error if the theme ID is not registered.
func Create(id string) (core.Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return core.Theme{}, fmt.Errorf("registry: unknown theme %q", id)
	}

	return f(), nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
