package snake

// burst turns every snake cell into a spray of particles. Particles are
// derived from the body and never feed back into gameplay.
func (s *Session) burst() {
	speed := s.rules.ParticleSpeed
	s.particles = make([]Particle, 0, len(s.snake)*s.rules.ParticlesPerCell)
	for _, c := range s.snake {
		for range s.rules.ParticlesPerCell {
			s.particles = append(s.particles, Particle{
				X:    float64(c.X) + 0.5,
				Y:    float64(c.Y) + 0.5,
				VX:   (s.rng.Float64()*2 - 1) * speed,
				VY:   (s.rng.Float64()*2 - 1) * speed,
				Life: s.rules.ParticleLife,
			})
		}
	}
}

// Animate runs one explosion frame. It has no effect unless the session is
// exploding; the session ends once the last particle expires.
func (s *Session) Animate() {
	if s.phase != PhaseExploding {
		return
	}
	s.busy = true
	defer func() { s.busy = false }()

	s.frames++
	live := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	s.particles = live

	if len(s.particles) == 0 {
		s.finish()
	}
}
