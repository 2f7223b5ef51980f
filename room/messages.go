package room

import "github.com/davidjames6775-beep/Supervisor-Task-Herding/protocol"

type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once after hello is parsed.
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	ClientID string
}

// Pointer: latest pointer sample for a client.
type Pointer struct {
	ClientID string
	Pointer  protocol.Pointer
}

// Control: pause, resume or reset the session.
type Control struct {
	ClientID string
	Cmd      string
}

// Leave: issued on disconnect.
type Leave struct {
	ClientID string
}
