package game

import "math"

// Stick is the player-driven actuator. The input side owns position,
// velocity and the active flag; the simulation only reads them and decays
// the velocity by StickFriction once per tick.
type Stick struct {
	X, Y   float64
	VX, VY float64
	Active bool
}

// TrackPointer moves the stick to a new board-local pointer sample and
// derives its velocity from the motion since the previous sample, clamped to
// StickSpeedMult times the base max puck speed.
func (s *Sim) TrackPointer(x, y float64, pressed bool, dt float64) {
	st := &s.Stick
	if dt > 0 {
		vx := (x - st.X) / dt
		vy := (y - st.Y) / dt
		limit := s.Tuning.MaxSpeed * s.Tuning.StickSpeedMult
		speed := math.Hypot(vx, vy)
		if speed > limit {
			scale := limit / speed
			vx *= scale
			vy *= scale
		}
		st.VX = vx
		st.VY = vy
	}
	st.X = x
	st.Y = y
	st.Active = pressed
}
