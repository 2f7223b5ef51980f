package protocol

// Messages coming in from the client.

type Hello struct {
	V    int    `json:"v"`              // protocol version
	Name string `json:"name,omitempty"` // optional display name
}

// Pointer is a board-local pointer sample. The session derives the stick's
// velocity from successive samples; clients only report where the pointer is
// and whether it is pressed.
type Pointer struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Pressed bool    `json:"pressed"`
}

const (
	CtrlPause  = "pause"
	CtrlResume = "resume"
	CtrlReset  = "reset"
)

type Control struct {
	Cmd string `json:"cmd"`
}
