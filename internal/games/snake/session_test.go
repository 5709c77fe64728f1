package snake

import (
	"testing"
	"time"
)

func newTestSession(f Features) *Session {
	rules := DefaultRules()
	rules.Features = f
	s := NewSession(rules, 42)
	s.Start()
	return s
}

// steer turns toward the food, sidestepping when the food is behind.
func steer(s *Session) {
	head, food := s.Head(), s.Food()
	var want []Direction
	switch {
	case food.X > head.X:
		want = append(want, DirRight)
	case food.X < head.X:
		want = append(want, DirLeft)
	}
	switch {
	case food.Y > head.Y:
		want = append(want, DirDown)
	case food.Y < head.Y:
		want = append(want, DirUp)
	}
	for _, d := range want {
		if d == s.Heading() {
			return
		}
		if d != s.Heading().Opposite() {
			s.Turn(d)
			return
		}
	}
	s.Turn((s.Heading() + 1) % 4)
}

// circle steers a length-1 snake around a 2x2 square so it never dies.
func circle(s *Session) {
	s.Turn((s.Heading() + 1) % 4)
}

func TestFirstStepScenario(t *testing.T) {
	s := newTestSession(AllFeatures)
	cellSize := s.Rules().CellSize

	if x, y := s.Head().Pixels(cellSize); x != 160 || y != 160 {
		t.Fatalf("Start head = (%d, %d) px, expected (160, 160)", x, y)
	}
	if x, y := s.Food().Pixels(cellSize); x != 100 || y != 100 {
		t.Fatalf("Start food = (%d, %d) px, expected (100, 100)", x, y)
	}
	if s.Heading() != DirRight {
		t.Fatalf("Start heading = %v, expected right", s.Heading())
	}

	s.Advance()

	if x, y := s.Head().Pixels(cellSize); x != 180 || y != 160 {
		t.Errorf("Head after one step = (%d, %d) px, expected (180, 160)", x, y)
	}
	if len(s.snake) != 1 {
		t.Errorf("Length after one step = %d, expected 1", len(s.snake))
	}
	if s.onSnake(CellAt(160, 160, cellSize)) {
		t.Error("Old tail cell should have been removed")
	}
}

func TestWallScenario(t *testing.T) {
	for _, f := range []Features{{}, AllFeatures} {
		s := newTestSession(f)
		s.snake = []Cell{CellAt(0, 0, 20), CellAt(20, 0, 20), CellAt(40, 0, 20)}
		s.heading = DirLeft

		s.Advance()

		if s.Cause() != CauseWall {
			t.Errorf("Cause = %v, expected wall", s.Cause())
		}
		if x, y := s.Crash().Pixels(20); x != -20 || y != 0 {
			t.Errorf("Crash = (%d, %d) px, expected (-20, 0)", x, y)
		}
		want := PhaseEnded
		if f.Explosion {
			want = PhaseExploding
		}
		if s.Phase() != want {
			t.Errorf("Phase = %v, expected %v", s.Phase(), want)
		}

		// No further ticks once dead
		tick := s.Tick()
		s.Advance()
		if s.Tick() != tick {
			t.Error("Advance should be a no-op after a fatal collision")
		}
	}
}

func TestMoveWithoutFood(t *testing.T) {
	s := newTestSession(Features{})
	s.snake = []Cell{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}
	s.food = Cell{X: 0, Y: 0}

	for range 5 {
		tail := s.snake[len(s.snake)-1]
		s.Advance()
		if len(s.snake) != 3 {
			t.Fatalf("Length = %d, expected 3", len(s.snake))
		}
		if s.onSnake(tail) {
			t.Fatalf("Tail %v should have been removed", tail)
		}
	}
	if s.Head() != (Cell{X: 10, Y: 10}) {
		t.Errorf("Head = %v, expected (10,10)", s.Head())
	}
}

func TestEatingFood(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rules := DefaultRules()
		rules.Features = Features{}
		s := NewSession(rules, seed)
		s.Start()
		s.snake = []Cell{{X: 8, Y: 8}, {X: 7, Y: 8}, {X: 6, Y: 8}}
		s.food = Cell{X: 9, Y: 8}

		s.Advance()

		if len(s.snake) != 4 {
			t.Fatalf("seed %d: length = %d, expected 4", seed, len(s.snake))
		}
		if s.Score() != 10 {
			t.Fatalf("seed %d: score = %d, expected 10", seed, s.Score())
		}
		if s.onSnake(s.Food()) {
			t.Fatalf("seed %d: new food %v spawned on the snake", seed, s.Food())
		}
		if !s.Rules().InBounds(s.Food()) {
			t.Fatalf("seed %d: new food %v is off the grid", seed, s.Food())
		}
	}
}

func TestSelfCollision(t *testing.T) {
	s := newTestSession(Features{})
	s.snake = []Cell{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	s.heading = DirRight

	s.Advance()

	if s.Cause() != CauseSelf {
		t.Errorf("Cause = %v, expected self", s.Cause())
	}
	if len(s.snake) != 5 {
		t.Errorf("Body should be frozen at length 5, got %d", len(s.snake))
	}
}

func TestChasingTailIsSafe(t *testing.T) {
	s := newTestSession(Features{})
	// A 2x2 loop: the head moves into the cell the tail leaves.
	s.snake = []Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
	s.heading = DirRight
	s.food = Cell{X: 0, Y: 0}

	s.Advance()

	if s.Phase() != PhasePlaying {
		t.Fatalf("Moving into the vacated tail cell should be safe, cause %v", s.Cause())
	}

	// When eating, the tail stays and the same move is fatal.
	s = newTestSession(Features{})
	s.snake = []Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
	s.heading = DirRight
	s.food = Cell{X: 6, Y: 5}
	s.Advance()
	if s.Cause() != CauseSelf {
		t.Errorf("Cause = %v, expected self when the tail does not move", s.Cause())
	}
}

func TestNoDuplicateSegments(t *testing.T) {
	s := newTestSession(Features{PowerUps: true})
	rules := s.Rules()
	for i := 0; i < 2000 && s.Phase() == PhasePlaying; i++ {
		steer(s)
		s.Advance()
		if s.Phase() != PhasePlaying {
			break
		}

		seen := make(map[Cell]bool)
		for _, c := range s.snake {
			if seen[c] {
				t.Fatalf("tick %d: duplicate segment %v", s.Tick(), c)
			}
			if !rules.InBounds(c) {
				t.Fatalf("tick %d: segment %v off the grid", s.Tick(), c)
			}
			seen[c] = true
		}
	}
	if s.Score() == 0 {
		t.Error("Autopilot should have eaten at least once")
	}
}

func TestReversalRejected(t *testing.T) {
	s := newTestSession(Features{})

	if s.Turn(DirLeft) {
		t.Error("Reversal from right to left should be rejected")
	}
	s.Advance()
	if s.Heading() != DirRight {
		t.Errorf("Heading = %v, expected right", s.Heading())
	}

	if s.Turn(DirRight) {
		t.Error("Repeating the current heading is not a change")
	}
	// The repeat used up this tick's change
	if s.Turn(DirDown) {
		t.Error("Down after a dropped request should wait for the next tick")
	}
	s.Advance()
	if s.Heading() != DirRight {
		t.Errorf("Heading = %v, expected right", s.Heading())
	}
	if !s.Turn(DirDown) {
		t.Error("Down should be accepted on the next tick")
	}
}

func TestOneTurnPerTick(t *testing.T) {
	s := newTestSession(Features{})
	start := s.Head()

	if !s.Turn(DirUp) {
		t.Fatal("First turn should be accepted")
	}
	if s.Turn(DirLeft) {
		t.Error("Second turn within one tick should be dropped")
	}
	s.Advance()

	if s.Heading() != DirUp {
		t.Errorf("Heading = %v, expected up", s.Heading())
	}
	if s.Head() != start.Add(DirUp.Vector()) {
		t.Errorf("Head = %v, expected one cell above %v", s.Head(), start)
	}

	// The next tick accepts a new change
	if !s.Turn(DirLeft) {
		t.Error("Turn after a tick boundary should be accepted")
	}
}

func TestDroppedRequestClaimsTheTick(t *testing.T) {
	tests := []struct {
		name  string
		turns []Direction
	}{
		{"reversal then perpendicular", []Direction{DirLeft, DirUp}},
		{"repeat then perpendicular", []Direction{DirRight, DirDown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(Features{})
			start := s.Head()
			for _, d := range tt.turns {
				if s.Turn(d) {
					t.Errorf("Turn(%v) accepted, expected every request dropped", d)
				}
			}
			s.Advance()

			if s.Heading() != DirRight {
				t.Errorf("Heading = %v, expected right", s.Heading())
			}
			if s.Head() != start.Add(DirRight.Vector()) {
				t.Errorf("Head = %v, expected one cell right of %v", s.Head(), start)
			}
		})
	}
}

func TestObstacleCollision(t *testing.T) {
	s := newTestSession(Features{Obstacles: true})
	s.obstacles = []Cell{s.Head().Add(DirRight.Vector())}

	s.Advance()

	if s.Cause() != CauseObstacle {
		t.Errorf("Cause = %v, expected obstacle", s.Cause())
	}
}

func TestFoodOnObstacleScoresBeforeDeath(t *testing.T) {
	s := newTestSession(Features{Obstacles: true})
	ahead := s.Head().Add(DirRight.Vector())
	s.obstacles = []Cell{ahead}
	s.food = ahead

	s.Advance()

	if s.Phase() != PhaseEnded || s.Cause() != CauseObstacle {
		t.Fatalf("phase %v cause %v, expected ended by obstacle", s.Phase(), s.Cause())
	}
	r := s.Result()
	if r.Score != 10 || r.Length != 2 {
		t.Errorf("Result = %+v, expected the food eaten before the crash", r)
	}
}

func TestInvincibilitySuppressesObstacles(t *testing.T) {
	s := newTestSession(AllFeatures)
	s.rules.ObstacleChance = 0
	ahead := s.Head().Add(DirRight.Vector())
	s.obstacles = []Cell{ahead}
	s.activate(PowerUpInvincible)

	s.Advance()

	if s.Phase() != PhasePlaying {
		t.Fatalf("Invincible snake died on an obstacle (cause %v)", s.Cause())
	}
	if s.Head() != ahead {
		t.Errorf("Head = %v, expected to pass onto the obstacle at %v", s.Head(), ahead)
	}
	if len(s.obstacles) != 1 {
		t.Error("Obstacles are never removed")
	}

	// Walls still kill
	s.snake = []Cell{{X: 19, Y: 3}}
	s.Advance()
	if s.Cause() != CauseWall {
		t.Errorf("Cause = %v, expected wall while invincible", s.Cause())
	}
}

func TestSpeedBoostCadence(t *testing.T) {
	s := newTestSession(Features{PowerUps: true})
	s.powerUps = []PowerUp{{Cell: s.Head().Add(DirRight.Vector()), Kind: PowerUpSpeed}}

	if s.Cadence() != 100*time.Millisecond {
		t.Fatalf("Start cadence = %v, expected 100ms", s.Cadence())
	}

	s.Advance()

	if len(s.powerUps) != 0 {
		t.Fatal("Power-up should be consumed on contact")
	}
	if !s.effects.Speed.Active || s.effects.Speed.Remaining != 200 {
		t.Fatalf("Speed timer = %+v, expected active with 200 ticks", s.effects.Speed)
	}
	if s.Cadence() != 50*time.Millisecond {
		t.Fatalf("Boosted cadence = %v, expected 50ms", s.Cadence())
	}

	for range 199 {
		circle(s)
		s.Advance()
	}
	if !s.effects.Speed.Active || s.Cadence() != 50*time.Millisecond {
		t.Fatalf("Boost should last 200 ticks, timer %+v cadence %v", s.effects.Speed, s.Cadence())
	}

	circle(s)
	s.Advance()
	if s.effects.Speed.Active {
		t.Error("Boost should have expired")
	}
	if s.Cadence() != 100*time.Millisecond {
		t.Errorf("Cadence after expiry = %v, expected 100ms", s.Cadence())
	}
}

func TestSpeedExpiryPolicy(t *testing.T) {
	tests := []struct {
		name   string
		toBase bool
		want   time.Duration
	}{
		{"recompute from score", false, 90 * time.Millisecond},
		{"restore base", true, 100 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(Features{PowerUps: true})
			s.rules.ExpiryToBase = tc.toBase
			s.score = 120
			s.activate(PowerUpSpeed)
			s.effects.Speed.Remaining = 1

			circle(s)
			s.Advance()

			if s.Cadence() != tc.want {
				t.Errorf("Cadence = %v, expected %v", s.Cadence(), tc.want)
			}
		})
	}
}

func TestScoreCadence(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, 100 * time.Millisecond},
		{40, 100 * time.Millisecond},
		{50, 95 * time.Millisecond},
		{100, 90 * time.Millisecond},
		{490, 55 * time.Millisecond},
		{500, 50 * time.Millisecond},
		{5000, 50 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := r.ScoreCadence(tc.score); got != tc.want {
			t.Errorf("ScoreCadence(%d) = %v, expected %v", tc.score, got, tc.want)
		}
	}

	r.Progressive = false
	if got := r.ScoreCadence(500); got != 100*time.Millisecond {
		t.Errorf("Fixed difficulty cadence = %v, expected 100ms", got)
	}
}

func TestCadenceSpeedsUpWithScore(t *testing.T) {
	s := newTestSession(Features{})
	s.score = 40
	s.food = s.Head().Add(DirRight.Vector())

	s.Advance()

	if s.Score() != 50 {
		t.Fatalf("Score = %d, expected 50", s.Score())
	}
	if s.Cadence() != 95*time.Millisecond {
		t.Errorf("Cadence = %v, expected 95ms", s.Cadence())
	}
}

func TestOnlyFirstPowerUpResolved(t *testing.T) {
	s := newTestSession(Features{PowerUps: true})
	ahead := s.Head().Add(DirRight.Vector())
	s.powerUps = []PowerUp{
		{Cell: Cell{X: 0, Y: 0}, Kind: PowerUpSpeed},
		{Cell: ahead, Kind: PowerUpInvincible},
		{Cell: ahead, Kind: PowerUpSpeed},
	}

	s.Advance()

	if len(s.powerUps) != 2 {
		t.Fatalf("Power-ups left = %d, expected 2", len(s.powerUps))
	}
	if !s.effects.Invincible.Active || s.effects.Speed.Active {
		t.Errorf("Only the first matching power-up should apply, effects %+v", s.effects)
	}
	if s.powerUps[1].Cell != ahead || s.powerUps[1].Kind != PowerUpSpeed {
		t.Error("The second power-up on the cell should remain")
	}
}

func TestInvincibilityWindow(t *testing.T) {
	const duration = 200
	s := newTestSession(Features{Obstacles: true, PowerUps: true})
	s.rules.ObstacleChance = 0
	s.powerUps = []PowerUp{{Cell: s.Head().Add(DirRight.Vector()), Kind: PowerUpInvincible}}
	s.Advance()

	// The timer counts down before each move, so the last protected move is
	// the one before expiry.
	for i := 1; i < duration; i++ {
		circle(s)
		s.obstacles = []Cell{s.Head().Add(s.Heading().Vector())}
		s.Advance()
		if s.Phase() != PhasePlaying {
			t.Fatalf("move %d after pickup died on an obstacle, expected protection", i)
		}
	}

	circle(s)
	s.obstacles = []Cell{s.Head().Add(s.Heading().Vector())}
	s.Advance()
	if s.Cause() != CauseObstacle {
		t.Errorf("move %d after pickup: cause %v, expected obstacle once expired", duration, s.Cause())
	}
}

func TestTimersAreIndependent(t *testing.T) {
	s := newTestSession(Features{PowerUps: true})
	s.activate(PowerUpSpeed)
	for range 50 {
		circle(s)
		s.Advance()
	}
	s.activate(PowerUpInvincible)

	if s.effects.Speed.Remaining != 150 || s.effects.Invincible.Remaining != 200 {
		t.Errorf("Timers = %+v, expected speed 150 and invincible 200", s.effects)
	}

	// Picking up the same kind again restarts its countdown
	s.activate(PowerUpSpeed)
	if s.effects.Speed.Remaining != 200 {
		t.Errorf("Speed remaining = %d, expected reset to 200", s.effects.Speed.Remaining)
	}
}

func TestReset(t *testing.T) {
	s := newTestSession(AllFeatures)
	s.score = 70
	s.snake = []Cell{{X: 3, Y: 3}, {X: 2, Y: 3}}
	s.heading = DirDown
	s.obstacles = []Cell{{X: 1, Y: 1}}
	s.powerUps = []PowerUp{{Cell: Cell{X: 2, Y: 2}}}
	s.activate(PowerUpSpeed)
	s.die(Cell{X: 3, Y: 4}, CauseSelf)

	if !s.Reset() {
		t.Fatal("Reset should be accepted outside a tick")
	}

	if s.Phase() != PhaseReady || s.Score() != 0 || s.Cause() != CauseNone {
		t.Errorf("Reset left phase %v score %d cause %v", s.Phase(), s.Score(), s.Cause())
	}
	if len(s.snake) != 1 || s.Head() != s.Rules().Start || s.Heading() != DirRight {
		t.Errorf("Reset snake = %v heading %v", s.snake, s.Heading())
	}
	if len(s.obstacles) != 0 || len(s.powerUps) != 0 || len(s.particles) != 0 {
		t.Error("Reset should clear obstacles, power-ups and particles")
	}
	if s.effects != (Effects{}) || s.Cadence() != 100*time.Millisecond {
		t.Errorf("Reset effects %+v cadence %v", s.effects, s.Cadence())
	}
	if s.Food() != s.Rules().StartFood {
		t.Errorf("Reset food = %v, expected %v", s.Food(), s.Rules().StartFood)
	}
}

func TestResetRejectedDuringTick(t *testing.T) {
	s := newTestSession(Features{})
	s.snake = []Cell{{X: 19, Y: 0}}

	var calls int
	var accepted bool
	s.OnEnd(func(r Result) {
		calls++
		accepted = s.Reset()
	})

	s.Advance()

	if calls != 1 {
		t.Fatalf("End callback ran %d times, expected 1", calls)
	}
	if accepted {
		t.Error("Reset from inside a tick should be rejected")
	}
	if !s.Ended() {
		t.Error("Rejected reset should leave the session ended")
	}
	if !s.Reset() {
		t.Error("Reset after the tick should be accepted")
	}
}

func TestTurnIgnoredWhenNotPlaying(t *testing.T) {
	rules := DefaultRules()
	s := NewSession(rules, 1)
	if s.Turn(DirUp) {
		t.Error("Turn before Start should be ignored")
	}
	s.Advance()
	if s.Tick() != 0 {
		t.Error("Advance before Start should be ignored")
	}
}
