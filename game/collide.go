package game

import "math"

// resolveCollisions separates every overlapping pair and exchanges an
// impulse along the contact normal. Pairs resolve sequentially in ascending
// index order, once per tick; a dense cluster may keep a little residual
// overlap until the next tick.
func (s *Sim) resolveCollisions() {
	minSep := 2 * s.Tuning.PuckRadius
	for i := 0; i < len(s.Pucks); i++ {
		for j := i + 1; j < len(s.Pucks); j++ {
			a, b := s.Pucks[i], s.Pucks[j]

			dx := b.X - a.X
			dy := b.Y - a.Y
			dist := math.Hypot(dx, dy)
			if dist >= minSep {
				continue
			}
			if dist < minDivisor {
				// Coincident centers have no normal; pick one.
				dist = minDivisor
				dx, dy = dist, 0
			}
			nx := dx / dist
			ny := dy / dist

			// Split the overlap evenly so neither puck tunnels.
			half := (minSep - dist) / 2
			a.X -= nx * half
			a.Y -= ny * half
			b.X += nx * half
			b.Y += ny * half

			vn := (b.VX-a.VX)*nx + (b.VY-a.VY)*ny
			if vn >= 0 {
				continue // already separating
			}
			impulse := -(1 + s.Tuning.Restitution) * vn / 2
			a.VX -= nx * impulse
			a.VY -= ny * impulse
			b.VX += nx * impulse
			b.VY += ny * impulse
		}
	}
}
