package game

import "fmt"

// Behavior constants that are part of the simulation's feel rather than
// something operators tune.
const (
	improvementMult = 1.25 // multiplier left of the target boundary, outside negative zones
	settledMult     = 0.95 // multiplier inside the target strip

	leakFloorFrac = 0.35 // leak pull at zero penetration, as a fraction of full strength

	stickDragTransfer = 0.08 // fraction of stick velocity handed to pushed pucks
	stickReachMargin  = 4.0

	wanderTurn = 0.3 // max per-tick perturbation of each wander axis

	minDivisor = 1e-6 // floor for distance/length divisors
)

// ZoneDef is one entry of the negative-zone table, ordered harshest first.
type ZoneDef struct {
	Label string  `yaml:"label"`
	Mult  float64 `yaml:"mult"`
}

// Range bounds a uniformly sampled personality coefficient.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Tuning holds every knob the simulation reads. A Sim takes a value copy at
// construction, so changing a Tuning afterwards has no effect on running
// sessions.
type Tuning struct {
	PuckCount    int     `yaml:"puckCount"`
	PuckRadius   float64 `yaml:"puckRadius"`
	BoardWidth   float64 `yaml:"boardWidth"`
	BoardHeight  float64 `yaml:"boardHeight"`
	TargetWidth  float64 `yaml:"targetWidth"`
	SpawnPadding float64 `yaml:"spawnPadding"`

	MaxSpeed    float64 `yaml:"maxSpeed"`
	Damping     float64 `yaml:"damping"`
	WallBounce  float64 `yaml:"wallBounce"`
	Restitution float64 `yaml:"restitution"`

	WanderStrength     float64 `yaml:"wanderStrength"`
	JitterStrength     float64 `yaml:"jitterStrength"`
	JitterChancePerSec float64 `yaml:"jitterChancePerSec"`
	GoalLeakStrength   float64 `yaml:"goalLeakStrength"`

	StickRadius    float64 `yaml:"stickRadius"`
	StickPush      float64 `yaml:"stickPush"`
	StickFriction  float64 `yaml:"stickFriction"`
	StickSpeedMult float64 `yaml:"stickSpeedMult"`

	FlashMillis   int     `yaml:"flashMillis"`
	HoldInsetFrac float64 `yaml:"holdInsetFrac"`
	MaxFrameDt    float64 `yaml:"maxFrameDt"`

	// NegativeZones partition the left NegativeFraction of the board into
	// equal-width segments, severity descending left to right.
	NegativeFraction float64   `yaml:"negativeFraction"`
	NegativeZones    []ZoneDef `yaml:"negativeZones"`

	WanderRange   Range `yaml:"wanderRange"`
	JitterRange   Range `yaml:"jitterRange"`
	SpeedRange    Range `yaml:"speedRange"`
	StubbornRange Range `yaml:"stubbornRange"`
	LeakRange     Range `yaml:"leakRange"`
}

func DefaultTuning() Tuning {
	return Tuning{
		PuckCount:    12,
		PuckRadius:   16,
		BoardWidth:   880,
		BoardHeight:  460,
		TargetWidth:  140,
		SpawnPadding: 24,

		MaxSpeed:    260,
		Damping:     0.985,
		WallBounce:  0.55,
		Restitution: 0.75,

		WanderStrength:     140,
		JitterStrength:     120,
		JitterChancePerSec: 1.2,
		GoalLeakStrength:   90,

		StickRadius:    28,
		StickPush:      900,
		StickFriction:  0.9,
		StickSpeedMult: 3,

		FlashMillis:   1200,
		HoldInsetFrac: 0.5,
		MaxFrameDt:    0.05,

		NegativeFraction: 0.5,
		NegativeZones: []ZoneDef{
			{Label: "critical", Mult: 1.9},
			{Label: "severe", Mult: 1.65},
			{Label: "slipping", Mult: 1.45},
		},

		WanderRange:   Range{Min: 0.6, Max: 1.5},
		JitterRange:   Range{Min: 0.5, Max: 1.6},
		SpeedRange:    Range{Min: 0.8, Max: 1.25},
		StubbornRange: Range{Min: 0.7, Max: 1.8},
		LeakRange:     Range{Min: 0.7, Max: 1.4},
	}
}

// TargetBoundary is the left edge of the target strip.
func (t Tuning) TargetBoundary() float64 {
	return t.BoardWidth - t.TargetWidth
}

// Validate rejects configurations the per-tick step cannot run over.
// Everything past construction is a total function, so all the checking
// happens here.
func (t Tuning) Validate() error {
	if t.PuckCount <= 0 {
		return fmt.Errorf("puckCount must be positive, got %d", t.PuckCount)
	}
	if t.PuckRadius <= 0 {
		return fmt.Errorf("puckRadius must be positive, got %g", t.PuckRadius)
	}
	if t.BoardWidth <= 2*t.PuckRadius || t.BoardHeight <= 2*t.PuckRadius {
		return fmt.Errorf("board %gx%g too small for puck radius %g", t.BoardWidth, t.BoardHeight, t.PuckRadius)
	}
	if t.TargetWidth <= 0 || t.TargetWidth >= t.BoardWidth {
		return fmt.Errorf("targetWidth %g outside (0, boardWidth)", t.TargetWidth)
	}
	if t.NegativeFraction <= 0 || t.NegativeFraction >= 1 {
		return fmt.Errorf("negativeFraction %g outside (0, 1)", t.NegativeFraction)
	}
	if t.BoardWidth*t.NegativeFraction >= t.TargetBoundary() {
		return fmt.Errorf("negative zones overlap the target strip")
	}
	if len(t.NegativeZones) == 0 {
		return fmt.Errorf("negativeZones table is empty")
	}
	for i := 1; i < len(t.NegativeZones); i++ {
		if t.NegativeZones[i].Mult >= t.NegativeZones[i-1].Mult {
			return fmt.Errorf("negative zone multipliers must strictly decrease: %q (%g) then %q (%g)",
				t.NegativeZones[i-1].Label, t.NegativeZones[i-1].Mult,
				t.NegativeZones[i].Label, t.NegativeZones[i].Mult)
		}
	}
	spawnW := t.TargetBoundary() - 2*(t.SpawnPadding+t.PuckRadius)
	spawnH := t.BoardHeight - 2*(t.SpawnPadding+t.PuckRadius)
	if spawnW <= 0 || spawnH <= 0 {
		return fmt.Errorf("spawn region is empty with padding %g", t.SpawnPadding)
	}
	if t.MaxSpeed <= 0 {
		return fmt.Errorf("maxSpeed must be positive, got %g", t.MaxSpeed)
	}
	if t.Damping <= 0 || t.Damping > 1 {
		return fmt.Errorf("damping %g outside (0, 1]", t.Damping)
	}
	if t.WallBounce < 0 || t.WallBounce > 1 {
		return fmt.Errorf("wallBounce %g outside [0, 1]", t.WallBounce)
	}
	if t.Restitution < 0 || t.Restitution > 1 {
		return fmt.Errorf("restitution %g outside [0, 1]", t.Restitution)
	}
	if t.StickFriction < 0 || t.StickFriction > 1 {
		return fmt.Errorf("stickFriction %g outside [0, 1]", t.StickFriction)
	}
	if t.FlashMillis <= 0 {
		return fmt.Errorf("flashMillis must be positive, got %d", t.FlashMillis)
	}
	if t.MaxFrameDt <= 0 {
		return fmt.Errorf("maxFrameDt must be positive, got %g", t.MaxFrameDt)
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"wanderRange", t.WanderRange},
		{"jitterRange", t.JitterRange},
		{"speedRange", t.SpeedRange},
		{"stubbornRange", t.StubbornRange},
		{"leakRange", t.LeakRange},
	}
	for _, e := range ranges {
		if e.r.Min <= 0 || e.r.Max < e.r.Min {
			return fmt.Errorf("%s [%g, %g] must satisfy 0 < min <= max", e.name, e.r.Min, e.r.Max)
		}
	}
	return nil
}
