package game

import "math"

// applyWander drifts the wander direction by a bounded random delta, keeps
// each axis in [-1, 1], and accelerates along the normalized direction.
func (s *Sim) applyWander(p *Puck, zc zoneClass, dt float64) {
	p.WX = clamp(p.WX+s.randomSigned()*wanderTurn, -1, 1)
	p.WY = clamp(p.WY+s.randomSigned()*wanderTurn, -1, 1)

	mag := math.Hypot(p.WX, p.WY)
	if mag < minDivisor {
		mag = minDivisor
	}
	a := s.Tuning.WanderStrength * p.Traits.Wander * zc.mult
	p.VX += p.WX / mag * a * dt
	p.VY += p.WY / mag * a * dt
}

// applyGoalLeak pulls a puck back out of the target strip. The pull starts
// at leakFloorFrac of full strength right at the boundary and ramps to full
// strength at one target-width of penetration.
func (s *Sim) applyGoalLeak(p *Puck, dt float64) {
	boundary := s.Tuning.TargetBoundary()
	if p.X <= boundary {
		return
	}
	depth := clamp((p.X-boundary)/s.Tuning.TargetWidth, 0, 1)
	pull := s.Tuning.GoalLeakStrength * p.Traits.Leak * (leakFloorFrac + (1-leakFloorFrac)*depth)
	p.VX -= pull * dt
}

// applyJitter runs the per-tick Bernoulli trial and, on success, kicks the
// puck in a random direction. The kick is a discrete impulse, deliberately
// not scaled by dt; only the trial probability is.
func (s *Sim) applyJitter(p *Puck, zc zoneClass, dt float64) {
	chance := s.Tuning.JitterChancePerSec * p.Traits.Jitter * zc.mult * dt
	if s.randomFloat() >= chance {
		return
	}
	angle := s.randomAngle()
	kick := s.Tuning.JitterStrength * p.Traits.Jitter
	p.VX += math.Cos(angle) * kick
	p.VY += math.Sin(angle) * kick
}

// applyStickPush repels a puck away from an active stick within reach.
// A puck's stubbornness divides the impulse. A fixed fraction of the stick's
// own velocity transfers directly, un-scaled by dt, so a fast drag flings
// pucks harder than a slow press.
func (s *Sim) applyStickPush(p *Puck, dt float64) {
	st := &s.Stick
	if !st.Active {
		return
	}
	reach := s.Tuning.PuckRadius + s.Tuning.StickRadius + stickReachMargin
	dx := p.X - st.X
	dy := p.Y - st.Y
	dist := math.Hypot(dx, dy)
	if dist >= reach {
		return
	}
	if dist < minDivisor {
		dist = minDivisor
	}
	push := s.Tuning.StickPush * (1 - dist/reach) / p.Traits.Stubborn
	p.VX += dx/dist*push*dt + st.VX*stickDragTransfer
	p.VY += dy/dist*push*dt + st.VY*stickDragTransfer
}

// clampSpeed caps the velocity magnitude at the puck's personal limit,
// preserving direction.
func (s *Sim) clampSpeed(p *Puck) {
	limit := s.Tuning.MaxSpeed * p.Traits.Speed
	speed := math.Hypot(p.VX, p.VY)
	if speed > limit {
		scale := limit / speed
		p.VX *= scale
		p.VY *= scale
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
