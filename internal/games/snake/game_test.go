package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func newTestGame(t *testing.T, v Variant) *Game {
	t.Helper()
	g := NewVariant(v)
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24})
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should stay identical
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := range 300 {
		input.Clear()
		switch i % 40 {
		case 5:
			input.Set(core.ActionDown)
		case 15:
			input.Set(core.ActionLeft)
		case 25:
			input.Set(core.ActionUp)
		case 35:
			input.Set(core.ActionRight)
		}

		g1.Step(input)
		g2.Step(input)

		if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
			t.Fatalf("step %d: snapshots diverged:\n%+v\n%+v", i, s1, s2)
		}
	}
}

func TestVariantsRegistered(t *testing.T) {
	list := registry.List()
	if len(list) != len(Variants) {
		t.Fatalf("registry has %d variants, expected %d", len(list), len(Variants))
	}
	for i, v := range Variants {
		if list[i].ID != v.ID || list[i].Title != v.Title {
			t.Errorf("registry[%d] = %+v, expected %s %q", i, list[i], v.ID, v.Title)
		}
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Errorf("Create(%q) failed: %v", v.ID, err)
			continue
		}
		if g.ID() != v.ID {
			t.Errorf("Create(%q).ID() = %q", v.ID, g.ID())
		}
	}

	if New().ID() != "snake" || New().Title() != "Snake" {
		t.Error("New() should build the complete edition")
	}
}

func TestVariantFeatures(t *testing.T) {
	classic := Variants[0].Features
	if classic.Obstacles || classic.PowerUps || classic.Explosion {
		t.Error("Classic edition should have no extra mechanics")
	}
	if Variants[len(Variants)-1].Features != AllFeatures {
		t.Error("Last edition should have every mechanic")
	}

	if v, ok := VariantByID("snake_obstacles"); !ok || !v.Features.Obstacles || v.Features.PowerUps {
		t.Errorf("VariantByID(snake_obstacles) = %+v, %v", v, ok)
	}
	if _, ok := VariantByID("tetris"); ok {
		t.Error("Unknown edition should not be found")
	}

	if got := NewVariant(Variants[1]).Description(); got != "Adds obstacles" {
		t.Errorf("Description() = %q", got)
	}
	if got := New().Description(); !strings.Contains(got, "crash animation") {
		t.Errorf("Description() = %q, expected the explosion to be named", got)
	}
}

func TestStepAppliesFirstTurn(t *testing.T) {
	g := newTestGame(t, Variants[0])

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	input.Set(core.ActionLeft)
	res := g.Step(input)

	if g.Session().Heading() != DirUp {
		t.Errorf("Heading = %v, expected up", g.Session().Heading())
	}
	if g.Session().Tick() != 1 {
		t.Errorf("Tick = %d, expected 1", g.Session().Tick())
	}
	if res.Next != 100*time.Millisecond {
		t.Errorf("Next = %v, expected 100ms", res.Next)
	}
}

func TestStepDropsTurnAfterReversal(t *testing.T) {
	g := newTestGame(t, Variants[0])

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	input.Set(core.ActionUp)
	g.Step(input)

	if g.Session().Heading() != DirRight {
		t.Errorf("Heading = %v, expected right: the reversal claims the tick", g.Session().Heading())
	}

	input.Clear()
	input.Set(core.ActionUp)
	g.Step(input)
	if g.Session().Heading() != DirUp {
		t.Errorf("Heading = %v, expected up on the next tick", g.Session().Heading())
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, Variants[0])
	g.Session().snake = []Cell{{X: 19, Y: 8}}
	gen := g.Generation()

	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver {
		t.Fatal("Expected game over after hitting the wall")
	}
	if res.Next != 0 {
		t.Errorf("Next = %v, expected 0 once ended", res.Next)
	}
	out, ok := g.Outcome()
	if !ok || out.Cause != "wall" || out.Length != 1 || out.Ticks != 1 {
		t.Errorf("Outcome() = %+v, %v", out, ok)
	}

	// Restart starts a new generation
	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	res = g.Step(input)

	if res.State.GameOver || g.Session().Phase() != PhasePlaying {
		t.Error("Restart should start a new run")
	}
	if g.Generation() != gen+1 {
		t.Errorf("Generation = %d, expected %d", g.Generation(), gen+1)
	}
	if _, ok := g.Outcome(); ok {
		t.Error("Outcome should be cleared by restart")
	}
}

func TestExplosionBeforeGameOver(t *testing.T) {
	g := newTestGame(t, Variants[len(Variants)-1])
	g.Session().snake = []Cell{{X: 19, Y: 8}, {X: 18, Y: 8}}

	res := g.Step(core.NewInputFrame())
	if res.State.GameOver {
		t.Fatal("Game should not be over while exploding")
	}
	if res.Next != 16*time.Millisecond {
		t.Errorf("Next = %v, expected frame interval 16ms", res.Next)
	}

	steps := 0
	for !g.State().GameOver && steps < 100 {
		g.Step(core.NewInputFrame())
		steps++
	}
	if steps != 30 {
		t.Errorf("Explosion took %d frames, expected 30", steps)
	}
}

func TestHighScore(t *testing.T) {
	g := newTestGame(t, Variants[0])
	g.SetHighScore(5)
	g.Session().food = g.Session().Head().Add(DirRight.Vector())
	g.Step(core.NewInputFrame())

	g.Session().snake = []Cell{{X: 19, Y: 0}}
	g.Step(core.NewInputFrame())

	if g.highScore != 10 {
		t.Errorf("highScore = %d, expected 10", g.highScore)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, Variants[0])

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	res := g.Step(input)

	if !res.State.Paused {
		t.Fatal("Expected paused state")
	}
	tick := g.Session().Tick()
	res = g.Step(core.NewInputFrame())
	if g.Session().Tick() != tick {
		t.Error("Paused game should not tick")
	}
	if res.Next != 100*time.Millisecond {
		t.Errorf("Paused Next = %v, expected base cadence", res.Next)
	}

	g.Step(input)
	if g.State().Paused {
		t.Error("Second pause should resume")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := NewVariant(Variants[0])
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 10, ScreenH: 5})

	if !g.tooSmall {
		t.Error("Game should detect window is too small")
	}
	g.Step(core.NewInputFrame())
	if g.Session().Tick() != 0 {
		t.Error("Game should not tick while the window is too small")
	}

	screen := core.NewScreen(10, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("Render should explain the window is too small")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, Variants[len(Variants)-1])
	g.SetHighScore(70)
	g.Session().activate(PowerUpSpeed)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	content := screen.String()

	for _, want := range []string{"Score: 0", "Best: 70", "SPD 200", "┌"} {
		if !strings.Contains(content, want) {
			t.Errorf("Rendered screen missing %q", want)
		}
	}

	field := g.fieldRect(screen)
	head := g.Session().Head()
	cell := screen.GetCell(field.X+1+head.X*cellWidth, field.Y+1+head.Y)
	if cell.Rune != '█' || cell.Color != ColorHead {
		t.Errorf("Head cell = %+v, expected head block", cell)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, Variants[0])
	g.Session().snake = []Cell{{X: 0, Y: 0}}
	g.Session().heading = DirUp
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	content := screen.String()

	if !strings.Contains(content, "Game Over") || !strings.Contains(content, "(wall)") {
		t.Errorf("Game over overlay missing:\n%s", content)
	}
}

func TestSetConfig(t *testing.T) {
	t.Cleanup(func() { SetConfig(config.DefaultSnakeConfig()) })

	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Count = 12
	cfg.Grid.StartX, cfg.Grid.StartY = 6, 6
	cfg.Grid.FoodX, cfg.Grid.FoodY = 2, 2
	cfg.Timing.BaseCadenceMS = 150
	SetConfig(cfg)

	g := newTestGame(t, Variants[0])
	rules := g.Session().Rules()
	if rules.GridCount != 12 || rules.BaseCadence != 150*time.Millisecond {
		t.Errorf("Rules = %+v, expected config overrides", rules)
	}
	if g.Session().Head() != (Cell{X: 6, Y: 6}) {
		t.Errorf("Head = %v, expected (6,6)", g.Session().Head())
	}
	if g.fieldWidth() != 26 || g.fieldHeight() != 15 {
		t.Errorf("Field = %dx%d, expected 26x15", g.fieldWidth(), g.fieldHeight())
	}
}

func TestGenerationAcrossResets(t *testing.T) {
	g := newTestGame(t, Variants[0])
	first := g.Generation()

	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 100, ScreenH: 30})

	if g.Generation() == first {
		t.Error("Reset should start a new generation so old ticks are dropped")
	}
}

func TestUsePreset(t *testing.T) {
	g := NewVariant(Variants[0])
	g.UsePreset(config.DifficultyHard)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	if got := g.Session().Cadence(); got != 80*time.Millisecond {
		t.Errorf("Hard start cadence = %v, expected 80ms", got)
	}

	// Other games keep the package configuration
	other := newTestGame(t, Variants[0])
	if got := other.Session().Cadence(); got != 100*time.Millisecond {
		t.Errorf("Default start cadence = %v, expected 100ms", got)
	}

	g.UsePreset(config.DifficultyFixed)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	if g.Session().Rules().Progressive {
		t.Error("Fixed preset should disable progression")
	}
}
