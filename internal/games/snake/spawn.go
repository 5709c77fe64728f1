package snake

// offGrid parks the food when the board is full.
var offGrid = Cell{X: -1, Y: -1}

// randomCell samples a grid cell uniformly.
func (s *Session) randomCell() Cell {
	return Cell{
		X: s.rng.Intn(s.rules.GridCount),
		Y: s.rng.Intn(s.rules.GridCount),
	}
}

// spawnFood places food on a cell no snake segment occupies, then gives a
// power-up a chance to appear.
func (s *Session) spawnFood() {
	for range s.rules.SpawnAttempts {
		c := s.randomCell()
		if !s.onSnake(c) {
			s.food = c
			s.spawnPowerUp()
			return
		}
	}

	// Rejection sampling kept missing, so the board is crowded.
	free := s.freeCells()
	if len(free) == 0 {
		s.food = offGrid
		return
	}
	s.food = free[s.rng.Intn(len(free))]
	s.spawnPowerUp()
}

// freeCells lists every cell not covered by the snake, row by row.
func (s *Session) freeCells() []Cell {
	taken := make(map[Cell]bool, len(s.snake))
	for _, seg := range s.snake {
		taken[seg] = true
	}

	n := s.rules.GridCount
	free := make([]Cell, 0, n*n-len(taken))
	for y := range n {
		for x := range n {
			if c := (Cell{X: x, Y: y}); !taken[c] {
				free = append(free, c)
			}
		}
	}
	return free
}

// spawnPowerUp rolls for a power-up anywhere on the grid. Overlap with the
// snake, food or obstacles is allowed.
func (s *Session) spawnPowerUp() {
	if !s.rules.Features.PowerUps {
		return
	}
	if s.rng.Float64() >= s.rules.PowerUpChance {
		return
	}
	s.powerUps = append(s.powerUps, PowerUp{
		Cell: s.randomCell(),
		Kind: PowerUpKind(s.rng.Intn(int(powerUpKinds))),
	})
}

// spawnObstacle rolls for a new obstacle while below the cap. Obstacles never
// move once placed and may land on anything.
func (s *Session) spawnObstacle() {
	if !s.rules.Features.Obstacles || len(s.obstacles) >= s.rules.MaxObstacles {
		return
	}
	if s.rng.Float64() >= s.rules.ObstacleChance {
		return
	}
	s.obstacles = append(s.obstacles, s.randomCell())
}
