package snake

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Frames     uint64
	Variant    string
	Phase      Phase
	Cause      Cause
	Score      int
	SnakeLen   int
	HeadX      int
	HeadY      int
	Heading    Direction
	FoodX      int
	FoodY      int
	Obstacles  int
	PowerUps   int
	Particles  int
	CadenceMS  int64
	Speed      Timer
	Invincible Timer
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	return Snapshot{
		Tick:       s.tick,
		Frames:     s.frames,
		Variant:    g.variant.ID,
		Phase:      s.phase,
		Cause:      s.cause,
		Score:      s.score,
		SnakeLen:   len(s.snake),
		HeadX:      s.Head().X,
		HeadY:      s.Head().Y,
		Heading:    s.heading,
		FoodX:      s.food.X,
		FoodY:      s.food.Y,
		Obstacles:  len(s.obstacles),
		PowerUps:   len(s.powerUps),
		Particles:  len(s.particles),
		CadenceMS:  s.cadence.Milliseconds(),
		Speed:      s.effects.Speed,
		Invincible: s.effects.Invincible,
	}
}
