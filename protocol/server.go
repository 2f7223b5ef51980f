package protocol

// Welcome is sent once after hello, carrying everything a client needs to
// lay out the board before the first state broadcast arrives.
type Welcome struct {
	ClientID    string         `json:"clientId"`
	TickHz      int            `json:"tickHz"`
	BoardWidth  float64        `json:"boardWidth"`
	BoardHeight float64        `json:"boardHeight"`
	PuckRadius  float64        `json:"puckRadius"`
	TargetWidth float64        `json:"targetWidth"`
	Zones       []ZoneSnapshot `json:"zones"`
}

type ZoneSnapshot struct {
	Label string  `json:"label"`
	MinX  float64 `json:"minX"`
	MaxX  float64 `json:"maxX"`
	Mult  float64 `json:"mult"`
}

type State struct {
	Tick     int            `json:"tick"`
	Paused   bool           `json:"paused"`
	Pucks    []PuckSnapshot `json:"pucks"`
	Stick    StickSnapshot  `json:"stick"`
	Hold     float64        `json:"hold"`
	BestHold float64        `json:"bestHold"`
	AllHeld  bool           `json:"allHeld"`
}

type PuckSnapshot struct {
	ID  string  `json:"id"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	VX  float64 `json:"vx"`
	VY  float64 `json:"vy"`
	Hue float64 `json:"hue,omitempty"`
}

type StickSnapshot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Active bool    `json:"active"`
}

// Alerts is broadcast only when the active flash set changes.
type Alerts struct {
	Active []string `json:"active"`
}
