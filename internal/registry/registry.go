// Package registry keeps the playable game variants. Variants register a
// factory from init(), so the platform and the CLI can list and start
// them by ID without importing the game packages directly.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Game is what the platform drives once per tick. Implementations hold
// pure game logic and know nothing about the terminal.
type Game interface {
	// ID is the unique variant identifier, also used as the score key.
	ID() string

	// Title is the human-readable name shown in menus.
	Title() string

	// Reset builds a fresh scene for the given screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current scene into dst.
	Render(dst *core.Screen)

	// State returns score, lives and phase flags.
	State() core.GameState
}

// LoggerUser is implemented by games that accept a logger.
type LoggerUser interface {
	UseLogger(l *log.Logger)
}

// HighScoreUser is implemented by games that keep a high score.
type HighScoreUser interface {
	UseHighScores(s core.HighScoreStore)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Attach hands the logger and the high score store to g when it accepts
// them. Nil arguments are skipped.
func Attach(g Game, l *log.Logger, s core.HighScoreStore) {
	if lu, ok := g.(LoggerUser); ok && l != nil {
		lu.UseLogger(l)
	}
	if hu, ok := g.(HighScoreUser); ok && s != nil {
		hu.UseHighScores(s)
	}
}
