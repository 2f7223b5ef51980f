package protocol

import "testing"

func TestMessageConstants(t *testing.T) {
	if MsgHello != "hello" {
		t.Fatalf("MsgHello = %q, want %q", MsgHello, "hello")
	}
	if MsgPointer != "pointer" {
		t.Fatalf("MsgPointer = %q, want %q", MsgPointer, "pointer")
	}
	if MsgControl != "control" {
		t.Fatalf("MsgControl = %q, want %q", MsgControl, "control")
	}
	if MsgWelcome != "welcome" {
		t.Fatalf("MsgWelcome = %q, want %q", MsgWelcome, "welcome")
	}
	if MsgState != "state" {
		t.Fatalf("MsgState = %q, want %q", MsgState, "state")
	}
	if MsgAlerts != "alerts" {
		t.Fatalf("MsgAlerts = %q, want %q", MsgAlerts, "alerts")
	}
}

func TestTimingSanity(t *testing.T) {
	if SimTickHz <= 0 || ClientInputHz <= 0 || BroadcastHz <= 0 {
		t.Fatalf("timing constants must be > 0")
	}
	if SimTickHz%BroadcastHz != 0 {
		t.Fatalf("SimTickHz %% BroadcastHz != 0 (%d %% %d)", SimTickHz, BroadcastHz)
	}
}
