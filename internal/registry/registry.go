// Package registry provides a global registry for quiz mode factories.
// Modes register themselves in init() functions, allowing the CLI and the
// home screen to discover them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-flags/internal/config"
	"github.com/vovakirdan/tui-flags/internal/quiz"
)

// ErrUnknownMode is returned by Create for an ID nobody registered.
var ErrUnknownMode = errors.New("registry: unknown mode")

// Mode is a playable quiz screen.
type Mode interface {
	// ID returns a unique identifier for this mode (e.g., "country", "hints").
	// Used for CLI arguments and config keys.
	ID() string

	// Title returns a human-readable name for display (e.g., "Guess the country").
	Title() string

	// Description is a one-line summary for the home screen.
	Description() string

	// Build resolves the mode's budgets against the loaded configuration.
	Build(cfg config.Config) quiz.Mode
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a mode.
type Factory func() Mode

var (
	factories = make(map[string]Factory)
	infos     []ModeInfo
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Typically called from an init() function.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f

	m := f()
	infos = append(infos, ModeInfo{
		ID:          id,
		Title:       m.Title(),
		Description: m.Description(),
	})
}

// List returns information about all registered modes in registration order.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, len(infos))
	copy(result, infos)
	return result
}

// Create instantiates a mode by its ID.
// Returns an error wrapping ErrUnknownMode if the ID is not registered.
func Create(id string) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}

	return f(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
