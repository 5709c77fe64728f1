package snake

// collectPowerUp consumes the first power-up under the head, if any.
func (s *Session) collectPowerUp(head Cell) {
	for i, p := range s.powerUps {
		if p.Cell != head {
			continue
		}
		s.powerUps = append(s.powerUps[:i], s.powerUps[i+1:]...)
		s.activate(p.Kind)
		return
	}
}

// activate starts or restarts the effect for a power-up kind.
func (s *Session) activate(kind PowerUpKind) {
	switch kind {
	case PowerUpSpeed:
		s.effects.Speed.start(s.rules.SpeedTicks)
		s.cadence = s.rules.SpeedCadence
	case PowerUpInvincible:
		s.effects.Invincible.start(s.rules.InvincibleTicks)
	}
}

// countdown runs once per tick before the move.
func (s *Session) countdown() {
	if s.effects.Speed.countdown() {
		if s.rules.ExpiryToBase {
			s.cadence = s.rules.BaseCadence
		} else {
			s.cadence = s.rules.ScoreCadence(s.score)
		}
	}
	s.effects.Invincible.countdown()
}
