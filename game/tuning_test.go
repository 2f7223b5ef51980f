package game

import (
	"strings"
	"testing"
)

func TestDefaultTuningValidates(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestValidateRejectsDegenerateConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tuning)
		want   string
	}{
		{"zero pucks", func(tu *Tuning) { tu.PuckCount = 0 }, "puckCount"},
		{"negative radius", func(tu *Tuning) { tu.PuckRadius = -1 }, "puckRadius"},
		{"tiny board", func(tu *Tuning) { tu.BoardWidth = 10 }, "too small"},
		{"target wider than board", func(tu *Tuning) { tu.TargetWidth = 2000 }, "targetWidth"},
		{"bad fraction", func(tu *Tuning) { tu.NegativeFraction = 1.5 }, "negativeFraction"},
		{"zones into target", func(tu *Tuning) { tu.NegativeFraction = 0.9 }, "overlap"},
		{"empty zone table", func(tu *Tuning) { tu.NegativeZones = nil }, "empty"},
		{"non-decreasing zones", func(tu *Tuning) {
			tu.NegativeZones = []ZoneDef{{Label: "a", Mult: 1.2}, {Label: "b", Mult: 1.5}}
		}, "strictly decrease"},
		{"padding eats spawn region", func(tu *Tuning) { tu.SpawnPadding = 400 }, "spawn region"},
		{"zero max speed", func(tu *Tuning) { tu.MaxSpeed = 0 }, "maxSpeed"},
		{"damping above one", func(tu *Tuning) { tu.Damping = 1.2 }, "damping"},
		{"negative bounce", func(tu *Tuning) { tu.WallBounce = -0.1 }, "wallBounce"},
		{"restitution above one", func(tu *Tuning) { tu.Restitution = 1.5 }, "restitution"},
		{"bad stick friction", func(tu *Tuning) { tu.StickFriction = 2 }, "stickFriction"},
		{"zero flash", func(tu *Tuning) { tu.FlashMillis = 0 }, "flashMillis"},
		{"zero frame cap", func(tu *Tuning) { tu.MaxFrameDt = 0 }, "maxFrameDt"},
		{"inverted range", func(tu *Tuning) { tu.SpeedRange = Range{Min: 2, Max: 1} }, "speedRange"},
		{"zero range min", func(tu *Tuning) { tu.StubbornRange = Range{Min: 0, Max: 1} }, "stubbornRange"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tun := DefaultTuning()
			tc.mutate(&tun)
			err := tun.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestNewSimRejectsInvalidTuning(t *testing.T) {
	tun := DefaultTuning()
	tun.PuckCount = -3
	if _, err := NewSim(tun, nil); err == nil {
		t.Fatalf("NewSim accepted invalid tuning")
	}
}
