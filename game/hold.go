package game

// holdTracker accumulates how long every puck has stayed inside the target
// strip at once, and the best streak since the last reset. The threshold is
// inset slightly past the boundary so a puck sitting right on it does not
// flicker the condition.
type holdTracker struct {
	holding bool
	start   float64
	current float64
	best    float64
}

func (h *holdTracker) observe(s *Sim) {
	threshold := s.Tuning.TargetBoundary() + s.Tuning.HoldInsetFrac*s.Tuning.PuckRadius

	all := len(s.Pucks) > 0
	for _, p := range s.Pucks {
		if p.X < threshold {
			all = false
			break
		}
	}

	if !all {
		h.holding = false
		h.current = 0
		return
	}
	if !h.holding {
		h.holding = true
		h.start = s.Now
	}
	h.current = s.Now - h.start
	if h.current > h.best {
		h.best = h.current
	}
}
