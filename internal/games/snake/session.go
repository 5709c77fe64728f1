// Package snake is the game: a grid session advanced one tick at a time, a
// driver that says when the next tick is due, and the platform adapter that
// registers the four editions.
package snake

import (
	"math/rand"
	"time"
)

// Session is one game from start to death. It owns every entity on the grid
// and is mutated only through its methods.
type Session struct {
	rules Rules
	rng   *rand.Rand

	snake   []Cell // Head at index 0
	heading Direction
	turned  bool // A direction change was accepted since the last tick

	food      Cell
	obstacles []Cell
	powerUps  []PowerUp
	effects   Effects
	particles []Particle
	crash     Cell // Cell the head tried to enter on death

	score   int
	tick    uint64
	frames  uint64
	cadence time.Duration
	phase   Phase
	cause   Cause

	busy  bool // Inside Advance or Animate
	onEnd func(Result)
}

// NewSession creates a session in the ready phase.
func NewSession(rules Rules, seed int64) *Session {
	s := &Session{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
	s.init()
	return s
}

// init puts every counter and collection back to its starting value.
func (s *Session) init() {
	s.snake = []Cell{s.rules.Start}
	s.heading = DirRight
	s.turned = false
	s.food = s.rules.StartFood
	s.obstacles = nil
	s.powerUps = nil
	s.effects = Effects{}
	s.particles = nil
	s.crash = Cell{}
	s.score = 0
	s.tick = 0
	s.frames = 0
	s.cadence = s.rules.ScoreCadence(0)
	s.phase = PhaseReady
	s.cause = CauseNone
}

// Start begins ticking. It has no effect unless the session is ready.
func (s *Session) Start() {
	if s.phase == PhaseReady {
		s.phase = PhasePlaying
	}
}

// Reset returns the session to a fresh ready state. Calls made from inside a
// tick or explosion frame (for example from the end callback) are rejected.
func (s *Session) Reset() bool {
	if s.busy {
		return false
	}
	s.init()
	return true
}

// OnEnd registers the callback run once when the session ends.
func (s *Session) OnEnd(fn func(Result)) {
	s.onEnd = fn
}

// Turn requests a heading change. Only the first request between two ticks
// is considered, even when it is dropped: a reversal or a repeat of the
// current heading still uses up the tick's change.
func (s *Session) Turn(d Direction) bool {
	if s.phase != PhasePlaying || s.turned {
		return false
	}
	s.turned = true
	if d == s.heading || d == s.heading.Opposite() {
		return false
	}
	s.heading = d
	return true
}

// Advance runs one tick. It has no effect unless the session is playing.
func (s *Session) Advance() {
	if s.phase != PhasePlaying {
		return
	}
	s.busy = true
	defer func() { s.busy = false }()

	s.turned = false
	s.tick++
	s.countdown()

	if !s.move() {
		return
	}
	s.spawnObstacle()
}

// finish moves to the ended phase and notifies the callback.
func (s *Session) finish() {
	s.phase = PhaseEnded
	s.particles = nil
	if s.onEnd != nil {
		s.onEnd(s.Result())
	}
}

// Result summarizes the session so far.
func (s *Session) Result() Result {
	return Result{
		Score:  s.score,
		Length: len(s.snake),
		Cause:  s.cause,
		Ticks:  s.tick,
	}
}

// Rules returns the session's parameters.
func (s *Session) Rules() Rules { return s.rules }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Head returns the head cell.
func (s *Session) Head() Cell { return s.snake[0] }

// Snake returns a copy of the body, head first.
func (s *Session) Snake() []Cell { return append([]Cell(nil), s.snake...) }

// Heading returns the current direction of travel.
func (s *Session) Heading() Direction { return s.heading }

// Food returns the food cell.
func (s *Session) Food() Cell { return s.food }

// Obstacles returns a copy of the obstacle cells in placement order.
func (s *Session) Obstacles() []Cell { return append([]Cell(nil), s.obstacles...) }

// PowerUps returns a copy of the power-ups on the grid.
func (s *Session) PowerUps() []PowerUp { return append([]PowerUp(nil), s.powerUps...) }

// Effects returns the effect timers.
func (s *Session) Effects() Effects { return s.effects }

// Particles returns a copy of the live explosion particles.
func (s *Session) Particles() []Particle { return append([]Particle(nil), s.particles...) }

// Cadence returns the delay before the next tick.
func (s *Session) Cadence() time.Duration { return s.cadence }

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Cause returns why the session ended, or CauseNone.
func (s *Session) Cause() Cause { return s.cause }

// Crash returns the cell the head tried to enter when the session died.
func (s *Session) Crash() Cell { return s.crash }

// Tick returns the number of ticks run.
func (s *Session) Tick() uint64 { return s.tick }

// Ended reports whether nothing more will happen in this session.
func (s *Session) Ended() bool { return s.phase == PhaseEnded }
