package protocol

import (
	"encoding/json"
)

const (
	MsgHello   = "hello"
	MsgPointer = "pointer"
	MsgControl = "control"
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgAlerts  = "alerts"
)

const (
	SimTickHz     = 60
	ClientInputHz = 60
	BroadcastHz   = 30
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
