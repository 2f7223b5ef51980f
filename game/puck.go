package game

import (
	"math"

	"github.com/google/uuid"
)

// Personality holds the five per-puck coefficients drawn once at spawn.
// Stubborn divides the stick impulse, so higher values resist herding more.
type Personality struct {
	Wander   float64
	Jitter   float64
	Speed    float64
	Stubborn float64
	Leak     float64
}

// Puck is one simulated entity. Position and velocity are in board units;
// WX/WY is the slowly drifting wander direction, each axis kept in [-1, 1].
type Puck struct {
	ID string

	X, Y   float64
	VX, VY float64
	WX, WY float64

	Traits Personality

	// Hue is cosmetic; the simulation never reads it.
	Hue float64
}

// spawnPucks builds the initial population, uniformly placed in the safe
// region: inside the padding margin and left of the target strip.
func (s *Sim) spawnPucks() []*Puck {
	t := s.Tuning
	minX := t.SpawnPadding + t.PuckRadius
	maxX := t.TargetBoundary() - t.SpawnPadding - t.PuckRadius
	minY := t.SpawnPadding + t.PuckRadius
	maxY := t.BoardHeight - t.SpawnPadding - t.PuckRadius

	pucks := make([]*Puck, 0, t.PuckCount)
	for i := 0; i < t.PuckCount; i++ {
		angle := s.randomAngle()
		speed := s.randomRange(0, t.MaxSpeed*0.25)
		pucks = append(pucks, &Puck{
			ID: uuid.New().String(),
			X:  s.randomRange(minX, maxX),
			Y:  s.randomRange(minY, maxY),
			VX: math.Cos(angle) * speed,
			VY: math.Sin(angle) * speed,
			WX: s.randomSigned(),
			WY: s.randomSigned(),
			Traits: Personality{
				Wander:   s.randomRange(t.WanderRange.Min, t.WanderRange.Max),
				Jitter:   s.randomRange(t.JitterRange.Min, t.JitterRange.Max),
				Speed:    s.randomRange(t.SpeedRange.Min, t.SpeedRange.Max),
				Stubborn: s.randomRange(t.StubbornRange.Min, t.StubbornRange.Max),
				Leak:     s.randomRange(t.LeakRange.Min, t.LeakRange.Max),
			},
			Hue: s.randomRange(0, 360),
		})
	}
	return pucks
}
