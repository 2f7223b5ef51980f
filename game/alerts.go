package game

import (
	"slices"
	"sort"
)

// alertTracker turns negative-zone entries into time-limited flashes. The
// trigger is the transition: a puck re-observed in the zone it was already
// in does not refresh the flash, only arriving from a different zone (or
// from outside all negative zones) does.
type alertTracker struct {
	lastZone map[string]string  // puck id -> negative-zone label, "" when outside
	expiry   map[string]float64 // label -> sim-clock instant the flash ends
	active   []string
	changed  bool
}

func newAlertTracker() alertTracker {
	return alertTracker{
		lastZone: make(map[string]string),
		expiry:   make(map[string]float64),
	}
}

func (a *alertTracker) observe(s *Sim) {
	flash := float64(s.Tuning.FlashMillis) / 1000

	for _, p := range s.Pucks {
		label := ""
		if zc := s.classify(p.X); zc.negative != nil {
			label = zc.negative.Label
		}
		if label != "" && label != a.lastZone[p.ID] {
			a.expiry[label] = s.Now + flash
		}
		a.lastZone[p.ID] = label
	}

	next := make([]string, 0, len(a.expiry))
	for label, exp := range a.expiry {
		if exp <= s.Now {
			delete(a.expiry, label)
			continue
		}
		next = append(next, label)
	}
	sort.Strings(next)

	a.changed = !slices.Equal(next, a.active)
	a.active = next
}
