// Package registry keeps the game factories. Game packages register
// themselves from init(), so the CLI and the terminal frontend discover
// modes without importing them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bomberbug/internal/core"
)

// Game is the contract between a game and the platform.
// Games hold pure logic; the platform owns input mapping, timing and
// drawing to the terminal.
type Game interface {
	// ID returns a unique identifier, used by the CLI and the score store.
	ID() string

	// Title returns a display name.
	Title() string

	// Reset starts a fresh session. Called once at start and again when
	// the player restarts from scratch.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with every seat's input.
	Step(in core.MultiInputFrame) core.StepResult

	// Render draws the current state into a cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
