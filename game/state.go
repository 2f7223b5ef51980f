package game

// Sim owns all per-tick simulation state. The session loop writes the stick
// and the Paused flag between ticks; everything else mutates only inside
// Step, so a snapshot read after Step returns is consistent.
type Sim struct {
	Tuning Tuning
	Zones  []Zone

	Tick   int
	Now    float64 // seconds of simulated time, sum of clamped frame deltas
	Paused bool

	Pucks []*Puck
	Stick Stick

	alerts alertTracker
	hold   holdTracker

	rng Rand
}

// NewSim validates the tuning and builds a fresh population. rng may be nil,
// in which case the global source is used.
func NewSim(t Tuning, rng Rand) (*Sim, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	s := &Sim{Tuning: t, Zones: BuildZones(t), rng: rng}
	s.reset()
	return s, nil
}

// Reset replaces the population and clears stick, clock, alert and hold
// state, including the best-hold statistic.
func (s *Sim) Reset() {
	s.reset()
}

func (s *Sim) reset() {
	s.Tick = 0
	s.Now = 0
	s.Pucks = s.spawnPucks()
	s.Stick = Stick{}
	s.alerts = newAlertTracker()
	s.hold = holdTracker{}
}

// ActiveAlerts is the sorted set of zone labels still flashing.
func (s *Sim) ActiveAlerts() []string {
	return s.alerts.active
}

// AlertsChanged reports whether the last Step changed the active alert set.
func (s *Sim) AlertsChanged() bool {
	return s.alerts.changed
}

// HoldDuration is the current continuous all-in-target duration in seconds.
func (s *Sim) HoldDuration() float64 {
	return s.hold.current
}

// BestHold is the longest hold seen since the last reset.
func (s *Sim) BestHold() float64 {
	return s.hold.best
}

// AllHeld reports whether every puck is currently inside the target strip.
func (s *Sim) AllHeld() bool {
	return s.hold.holding
}
