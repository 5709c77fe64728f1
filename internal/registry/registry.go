// Package registry maps variant IDs to game factories.
// Variants register themselves in init() functions, so the platform can
// list and start them without importing each one by name.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrUnknownVariant is returned by Create for an unregistered ID.
var ErrUnknownVariant = errors.New("unknown variant")

// Game is what the platform drives. Implementations hold pure game logic:
// the platform maps keys to actions, owns the timer and draws the screen.
type Game interface {
	// ID is the variant identifier used on the command line and in the
	// score database.
	ID() string

	// Title is the human-readable name.
	Title() string

	// Reset starts a fresh run. Called once at start and again on resize.
	Reset(cfg core.RuntimeConfig)

	// Step applies the input gathered since the last call, runs one update
	// and reports when to call it again.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState

	// Outcome returns the summary of the finished run, if it has finished.
	Outcome() (core.Outcome, bool)

	// Generation changes every time a new run starts. Timers armed for an
	// older generation must be ignored.
	Generation() uint64

	// SetHighScore seeds the best score shown while playing.
	SetHighScore(score int)
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	order     []GameInfo
)

// Register adds a variant. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	factories[id] = f
	order = append(order, GameInfo{ID: id, Title: f().Title()})
}

// List returns every registered variant in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()
	return append([]GameInfo(nil), order...)
}

// Create instantiates the variant with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownVariant, id)
	}
	return f(), nil
}

// Exists reports whether a variant is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[id]
	return ok
}
