// Package registry provides a global registry of named game presets.
// Presets register themselves in init() functions, allowing the CLI
// to discover them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-nrow/internal/config"
)

// ErrUnknownPreset is returned when no preset is registered under an ID.
var ErrUnknownPreset = errors.New("registry: unknown preset")

// PresetInfo contains metadata about a registered preset.
type PresetInfo struct {
	ID    string
	Title string
}

type entry struct {
	title string
	apply config.Preset
}

var (
	presets = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Typically called from an init() function.
// Panics if a preset with the same ID is already registered.
func Register(id, title string, apply config.Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[id]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", id))
	}
	presets[id] = entry{title: title, apply: apply}
}

// List returns information about all registered presets, sorted by ID.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(presets))
	for id, e := range presets {
		result = append(result, PresetInfo{
			ID:    id,
			Title: e.title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the preset registered under id.
func Get(id string) (config.Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := presets[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPreset, id)
	}
	return e.apply, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}
