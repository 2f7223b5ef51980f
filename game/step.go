package game

// Step advances the simulation by dt seconds. The session loop calls it once
// per tick, after writing the latest stick state. dt is clamped to
// MaxFrameDt so a stalled frame cannot destabilize the integration. While
// paused nothing moves, including the stick's friction decay.
func Step(s *Sim, dt float64) {
	if dt > s.Tuning.MaxFrameDt {
		dt = s.Tuning.MaxFrameDt
	}
	if s.Paused || dt <= 0 {
		return
	}
	s.Tick++
	s.Now += dt

	for _, p := range s.Pucks {
		zc := s.classify(p.X)
		s.applyWander(p, zc, dt)
		s.applyGoalLeak(p, dt)
		s.applyJitter(p, zc, dt)
		s.applyStickPush(p, dt)
		s.clampSpeed(p)
		s.integrate(p, dt)
	}

	s.resolveCollisions()
	// Positional correction can nudge a wall-side puck back out of bounds.
	for _, p := range s.Pucks {
		s.contain(p)
	}

	s.Stick.VX *= s.Tuning.StickFriction
	s.Stick.VY *= s.Tuning.StickFriction

	s.alerts.observe(s)
	s.hold.observe(s)
}

// integrate is explicit Euler with an unconditional damping multiply.
func (s *Sim) integrate(p *Puck, dt float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.VX *= s.Tuning.Damping
	p.VY *= s.Tuning.Damping
	s.contain(p)
}

// contain clamps the puck to the board per axis, reflecting the velocity
// component with a lossy bounce. Corner hits reflect both axes.
func (s *Sim) contain(p *Puck) {
	r := s.Tuning.PuckRadius
	if p.X < r {
		p.X = r
		p.VX = -p.VX * s.Tuning.WallBounce
	} else if p.X > s.Tuning.BoardWidth-r {
		p.X = s.Tuning.BoardWidth - r
		p.VX = -p.VX * s.Tuning.WallBounce
	}
	if p.Y < r {
		p.Y = r
		p.VY = -p.VY * s.Tuning.WallBounce
	} else if p.Y > s.Tuning.BoardHeight-r {
		p.Y = s.Tuning.BoardHeight - r
		p.VY = -p.VY * s.Tuning.WallBounce
	}
}
