package snake

// move advances the snake one cell along its heading and resolves food,
// collisions and power-up contact. It reports whether the snake survived.
func (s *Session) move() bool {
	next := s.Head().Add(s.heading.Vector())
	eating := next == s.food

	// The tail only stays put when eating, so it is the last cell the new
	// head can hit in that case.
	body := s.snake
	if !eating {
		body = body[:len(body)-1]
	}

	if cause := s.collision(next, body); cause != CauseNone {
		// Food may share a cell with an obstacle. It is eaten before the
		// crash, so the last bite scores and grows the dying snake.
		if eating {
			s.score += s.rules.FoodPoints
			s.snake = append([]Cell{next}, body...)
		}
		s.die(next, cause)
		return false
	}

	s.snake = append([]Cell{next}, body...)

	if eating {
		s.score += s.rules.FoodPoints
		s.spawnFood()
		if !s.effects.Speed.Active {
			s.cadence = s.rules.ScoreCadence(s.score)
		}
	}

	s.collectPowerUp(next)
	return true
}

// collision checks the candidate head against the post-move body. The first
// match wins: wall, then self, then obstacle.
func (s *Session) collision(head Cell, body []Cell) Cause {
	if !s.rules.InBounds(head) {
		return CauseWall
	}
	for _, c := range body {
		if c == head {
			return CauseSelf
		}
	}
	if !s.effects.Invincible.Active && s.isObstacle(head) {
		return CauseObstacle
	}
	return CauseNone
}

func (s *Session) isObstacle(c Cell) bool {
	for _, o := range s.obstacles {
		if o == c {
			return true
		}
	}
	return false
}

// onSnake reports whether any segment occupies c.
func (s *Session) onSnake(c Cell) bool {
	for _, seg := range s.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// die freezes gameplay and starts the explosion, or ends the session
// straight away when the variant has none.
func (s *Session) die(at Cell, cause Cause) {
	s.cause = cause
	s.crash = at
	if !s.rules.Features.Explosion {
		s.finish()
		return
	}
	s.phase = PhaseExploding
	s.burst()
	if len(s.particles) == 0 {
		s.finish()
	}
}
