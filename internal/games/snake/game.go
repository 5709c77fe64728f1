package snake

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant is one of the registered editions of the game.
type Variant struct {
	ID       string
	Title    string
	Features Features
}

// Variants lists the editions from the plainest to the complete one.
var Variants = []Variant{
	{ID: "snake_classic", Title: "Snake (Classic)", Features: Features{}},
	{ID: "snake_obstacles", Title: "Snake (Obstacles)", Features: Features{Obstacles: true}},
	{ID: "snake_powerups", Title: "Snake (Power-ups)", Features: Features{Obstacles: true, PowerUps: true}},
	{ID: "snake", Title: "Snake", Features: AllFeatures},
}

// VariantByID looks up an edition by its registry ID.
func VariantByID(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return NewVariant(v)
		})
	}
}

// Game adapts a Session to the platform: it maps input frames to turns,
// drives ticks and explosion frames, and renders to a screen buffer.
type Game struct {
	variant Variant
	config  *config.SnakeConfig // Overrides the package configuration
	rng     *rand.Rand
	session *Session
	driver  *Driver

	gen       uint64 // Bumped on every new run, across resets
	paused    bool
	tooSmall  bool
	screenW   int
	screenH   int
	highScore int
	result    *Result
}

// New creates the complete edition.
func New() *Game {
	return NewVariant(Variants[len(Variants)-1])
}

// NewVariant creates a game for the given edition.
func NewVariant(v Variant) *Game {
	return &Game{variant: v}
}

// Description summarizes the mechanics the edition adds.
func (g *Game) Description() string {
	f := g.variant.Features
	var extras []string
	if f.Obstacles {
		extras = append(extras, "obstacles")
	}
	if f.PowerUps {
		extras = append(extras, "power-ups")
	}
	if f.Explosion {
		extras = append(extras, "crash animation")
	}
	if len(extras) == 0 {
		return "Walls, food and your own tail"
	}
	return "Adds " + strings.Join(extras, ", ")
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset initializes/restarts the game with a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.result = nil

	snakeCfg := CurrentConfig()
	if g.config != nil {
		snakeCfg = *g.config
	}
	rules := RulesFromConfig(snakeCfg, g.variant.Features)
	g.session = NewSession(rules, g.rng.Int63())
	g.session.OnEnd(func(r Result) {
		g.result = &r
		if r.Score > g.highScore {
			g.highScore = r.Score
		}
	})
	g.driver = NewDriver(g.session, nil)
	g.driver.Restart()
	g.gen++

	g.tooSmall = g.screenW < g.fieldWidth() || g.screenH < g.fieldHeight()
}

// UsePreset makes later resets use the package configuration adjusted for a
// difficulty preset, independently of other games.
func (g *Game) UsePreset(preset config.DifficultyPreset) {
	cfg := PresetConfig(preset)
	g.config = &cfg
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// SetHighScore seeds the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Step consumes the input gathered since the last call and runs one
// update cycle.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	// Handle restart
	if input.Has(core.ActionRestart) && g.session.Ended() {
		if g.driver.Restart() {
			g.result = nil
			g.gen++
		}
		return g.stepResult()
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && g.session.Phase() == PhasePlaying {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return g.stepResult()
	}

	for _, a := range input.Directions() {
		g.session.Turn(directionFor(a))
	}

	g.driver.TickNow()
	return g.stepResult()
}

// stepResult reports state and the delay before the next Step. A paused or
// squeezed game keeps polling at the base cadence so it can resume.
func (g *Game) stepResult() core.StepResult {
	next, ok := g.driver.Next()
	if g.paused || g.tooSmall {
		next, ok = g.session.Rules().BaseCadence, true
	}
	if !ok {
		next = 0
	}
	return core.StepResult{State: g.State(), Next: next}
}

// directionFor maps a movement action to a heading.
func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	default:
		return DirRight
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Ended(),
		Paused:   g.paused,
	}
}

// Result returns the final result once the session has ended.
func (g *Game) Result() (Result, bool) {
	if g.result == nil {
		return Result{}, false
	}
	return *g.result, true
}

// Outcome reports the finished run in platform terms.
func (g *Game) Outcome() (core.Outcome, bool) {
	r, ok := g.Result()
	if !ok {
		return core.Outcome{}, false
	}
	return core.Outcome{Score: r.Score, Length: r.Length, Cause: r.Cause.String(), Ticks: r.Ticks}, true
}

// Generation identifies the current run for stale-tick detection.
func (g *Game) Generation() uint64 {
	return g.gen
}
