package game

import (
	"math"
	"math/rand"
)

// Rand is the single randomness operation the simulation draws from. Tests
// inject fixed sequences; production wiring passes nil and falls back to the
// package-level source.
type Rand interface {
	Float64() float64
}

func (s *Sim) randomFloat() float64 {
	if s != nil && s.rng != nil {
		return s.rng.Float64()
	}
	return rand.Float64()
}

func (s *Sim) randomRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.randomFloat()*(max-min)
}

func (s *Sim) randomAngle() float64 {
	return s.randomFloat() * 2 * math.Pi
}

// randomSigned returns a value in [-1, 1).
func (s *Sim) randomSigned() float64 {
	return s.randomFloat()*2 - 1
}
