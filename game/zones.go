package game

// Zone is a labeled x-interval with the agitation multiplier it imposes on
// wander strength and jitter probability.
type Zone struct {
	Label      string
	MinX, MaxX float64
	Mult       float64
}

// BuildZones lays the configured negative zones over the left
// NegativeFraction of the board as equal-width segments, harshest on the
// left. The improvement band and target strip are implicit: everything
// between the last negative zone and the target boundary, and everything
// past it.
func BuildZones(t Tuning) []Zone {
	n := len(t.NegativeZones)
	span := t.BoardWidth * t.NegativeFraction
	width := span / float64(n)
	zones := make([]Zone, 0, n)
	for i, def := range t.NegativeZones {
		zones = append(zones, Zone{
			Label: def.Label,
			MinX:  float64(i) * width,
			MaxX:  float64(i+1) * width,
			Mult:  def.Mult,
		})
	}
	return zones
}

// zoneClass is the classification of a single x coordinate. Exactly one of
// three cases holds: inside a negative zone, in the improvement band, or in
// the target strip.
type zoneClass struct {
	negative      *Zone
	inImprovement bool
	mult          float64
}

func (s *Sim) classify(x float64) zoneClass {
	for i := range s.Zones {
		z := &s.Zones[i]
		if x >= z.MinX && x < z.MaxX {
			return zoneClass{negative: z, mult: z.Mult}
		}
	}
	if x < s.Tuning.TargetBoundary() {
		return zoneClass{inImprovement: true, mult: improvementMult}
	}
	return zoneClass{mult: settledMult}
}
