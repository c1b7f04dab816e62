// Package registry maps ruleset IDs to game factories.
// Rulesets register themselves in init() functions so the frontends can
// list and create them without knowing their concrete types.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/galaxy-wars/internal/core"
)

// Game is the contract between the simulation and a frontend.
// Implementations contain pure logic; the frontend owns timing, input
// mapping and output.
type Game interface {
	// ID returns a unique identifier used for CLI arguments and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new screen size
// without losing their state.
type Resizer interface {
	Resize(screenW, screenH int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{
		factory: f,
		info: GameInfo{
			ID:          id,
			Title:       f().Title(),
			Description: description,
		},
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
