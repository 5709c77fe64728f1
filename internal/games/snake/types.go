package snake

// Cell is an integer grid coordinate. The unit is one grid cell, not pixels.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Pixels converts the cell to canvas units for a given cell size.
func (c Cell) Pixels(cellSize int) (x, y int) {
	return c.X * cellSize, c.Y * cellSize
}

// CellAt converts canvas units back to the cell containing them.
func CellAt(x, y, cellSize int) Cell {
	return Cell{X: floorDiv(x, cellSize), Y: floorDiv(y, cellSize)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit step for the direction.
func (d Direction) Vector() Cell {
	switch d {
	case DirUp:
		return Cell{X: 0, Y: -1}
	case DirDown:
		return Cell{X: 0, Y: 1}
	case DirLeft:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{X: 1, Y: 0}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// PowerUpKind identifies the effect granted by a power-up.
type PowerUpKind int

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpInvincible
	powerUpKinds // Sentinel for counting kinds
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "speed"
	case PowerUpInvincible:
		return "invincible"
	default:
		return "?"
	}
}

// PowerUp is a collectible lying on the grid.
type PowerUp struct {
	Cell Cell
	Kind PowerUpKind
}

// Timer is a finite-duration effect counted in ticks.
type Timer struct {
	Active    bool
	Remaining int
}

// start (re)arms the timer for n ticks.
func (t *Timer) start(n int) {
	t.Active = true
	t.Remaining = n
}

// countdown consumes one tick and reports whether the timer just expired.
func (t *Timer) countdown() bool {
	if !t.Active {
		return false
	}
	t.Remaining--
	if t.Remaining > 0 {
		return false
	}
	t.Active = false
	t.Remaining = 0
	return true
}

// Effects holds the independent power-up timers.
type Effects struct {
	Speed      Timer
	Invincible Timer
}

// Particle is one fragment of the death explosion, in continuous cell units.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int // Frames left
}

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseReady     Phase = iota // Created, not yet started
	PhasePlaying                // Ticking
	PhaseExploding              // Ticking stopped, explosion animating
	PhaseEnded                  // Nothing scheduled
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseExploding:
		return "exploding"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Cause records which collision ended a session.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseObstacle
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// Result is reported to the session-end callback.
type Result struct {
	Score  int
	Length int
	Cause  Cause
	Ticks  uint64
}
