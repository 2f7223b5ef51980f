package game

import "testing"

func TestBuildZonesPartitionsLeftFraction(t *testing.T) {
	tun := DefaultTuning()
	zones := BuildZones(tun)

	if len(zones) != len(tun.NegativeZones) {
		t.Fatalf("zone count = %d, want %d", len(zones), len(tun.NegativeZones))
	}
	if zones[0].MinX != 0 {
		t.Fatalf("first zone starts at %f, want 0", zones[0].MinX)
	}
	span := tun.BoardWidth * tun.NegativeFraction
	last := zones[len(zones)-1]
	if diff := last.MaxX - span; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("last zone ends at %f, want %f", last.MaxX, span)
	}
	for i := 1; i < len(zones); i++ {
		if zones[i].MinX != zones[i-1].MaxX {
			t.Fatalf("gap between zone %d and %d: %f != %f", i-1, i, zones[i-1].MaxX, zones[i].MinX)
		}
	}
}

func TestZoneMultipliersStrictlyDecrease(t *testing.T) {
	zones := BuildZones(DefaultTuning())
	for i := 1; i < len(zones); i++ {
		if zones[i].Mult >= zones[i-1].Mult {
			t.Fatalf("multiplier not strictly decreasing: %q=%f then %q=%f",
				zones[i-1].Label, zones[i-1].Mult, zones[i].Label, zones[i].Mult)
		}
	}
}

func TestClassifyIsTotalAndExclusive(t *testing.T) {
	s := newTestSim(t, DefaultTuning(), nil)

	for x := 0.0; x <= s.Tuning.BoardWidth; x += 0.5 {
		zc := s.classify(x)
		cases := 0
		if zc.negative != nil {
			cases++
			if zc.mult != zc.negative.Mult {
				t.Fatalf("x=%f: multiplier %f != zone's %f", x, zc.mult, zc.negative.Mult)
			}
		}
		if zc.inImprovement {
			cases++
			if zc.mult != improvementMult {
				t.Fatalf("x=%f: improvement multiplier = %f, want %f", x, zc.mult, improvementMult)
			}
		}
		if zc.negative == nil && !zc.inImprovement {
			cases++
			if zc.mult != settledMult {
				t.Fatalf("x=%f: target-side multiplier = %f, want %f", x, zc.mult, settledMult)
			}
		}
		if cases != 1 {
			t.Fatalf("x=%f classified into %d cases, want exactly 1", x, cases)
		}
	}
}

func TestClassifyBoundaries(t *testing.T) {
	s := newTestSim(t, DefaultTuning(), nil)
	negEnd := s.Tuning.BoardWidth * s.Tuning.NegativeFraction
	boundary := s.Tuning.TargetBoundary()

	if zc := s.classify(0); zc.negative == nil || zc.negative.Label != "critical" {
		t.Fatalf("x=0 should be in the harshest zone, got %+v", zc)
	}
	if zc := s.classify(negEnd - 0.001); zc.negative == nil || zc.negative.Label != "slipping" {
		t.Fatalf("just left of negative end should be mildest zone, got %+v", zc)
	}
	if zc := s.classify(negEnd); !zc.inImprovement {
		t.Fatalf("negative end should start the improvement band, got %+v", zc)
	}
	if zc := s.classify(boundary - 0.001); !zc.inImprovement {
		t.Fatalf("just left of target boundary should still improve, got %+v", zc)
	}
	if zc := s.classify(boundary); zc.negative != nil || zc.inImprovement {
		t.Fatalf("target boundary should classify as target side, got %+v", zc)
	}
	if zc := s.classify(s.Tuning.BoardWidth); zc.mult != settledMult {
		t.Fatalf("right edge multiplier = %f, want %f", zc.mult, settledMult)
	}
}
