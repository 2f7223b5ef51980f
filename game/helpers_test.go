package game

import (
	"math/rand"
	"testing"
)

// seqRand replays a fixed cycle of values, for tests that need exact control
// over every draw.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func newTestSim(t *testing.T, tun Tuning, rng Rand) *Sim {
	t.Helper()
	s, err := NewSim(tun, rng)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	return s
}

func seededSim(t *testing.T, tun Tuning, seed int64) *Sim {
	t.Helper()
	return newTestSim(t, tun, rand.New(rand.NewSource(seed)))
}

// calmTuning disables the stochastic forces so trajectories are driven only
// by what a test sets up explicitly.
func calmTuning() Tuning {
	tun := DefaultTuning()
	tun.WanderStrength = 0
	tun.JitterStrength = 0
	tun.JitterChancePerSec = 0
	return tun
}

// stillPuck builds a motionless puck with neutral personality.
func stillPuck(id string, x, y float64) *Puck {
	return &Puck{
		ID: id,
		X:  x,
		Y:  y,
		Traits: Personality{
			Wander:   1,
			Jitter:   1,
			Speed:    1,
			Stubborn: 1,
			Leak:     1,
		},
	}
}
