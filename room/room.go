package room

import (
	"fmt"
	"time"

	"github.com/davidjames6775-beep/Supervisor-Task-Herding/game"
	"github.com/davidjames6775-beep/Supervisor-Task-Herding/protocol"
)

// Room runs one herding session: a single simulation, a command inbox, and
// the set of connected clients. All state is owned by the Run goroutine;
// everything else talks to it through Inbox.
type Room struct {
	Inbox          chan any
	tickHz         int
	broadcastEvery int
	frames         int
	sim            *game.Sim
	clients        map[string]Conn
	pointer        protocol.Pointer
	pointerDirty   bool
	nextID         int
	quit           chan struct{}

	Code    string           // room code (e.g. "ABC123")
	OnEmpty func(code string) // called when the last client leaves
}

func New(t game.Tuning) (*Room, error) {
	sim, err := game.NewSim(t, nil)
	if err != nil {
		return nil, fmt.Errorf("new room: %w", err)
	}
	broadcastEvery := protocol.SimTickHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	return &Room{
		Inbox:          make(chan any, 256),
		tickHz:         protocol.SimTickHz,
		broadcastEvery: broadcastEvery,
		sim:            sim,
		clients:        make(map[string]Conn),
		nextID:         1,
		quit:           make(chan struct{}),
	}, nil
}

func (r *Room) Stop() {
	close(r.quit)
}

// NumClients returns the current number of connected clients.
func (r *Room) NumClients() int {
	return len(r.clients)
}

func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			r.step(dt)
		}
	}
}

// step runs one simulation tick and publishes whatever changed. Broadcast
// cadence follows the room's own frame counter, not the sim tick, so paused
// sessions keep streaming their frozen state.
func (r *Room) step(dt float64) {
	r.frames++

	if r.pointerDirty {
		r.sim.TrackPointer(r.pointer.X, r.pointer.Y, r.pointer.Pressed, dt)
		r.pointerDirty = false
	}

	game.Step(r.sim, dt)

	if r.sim.AlertsChanged() {
		r.broadcastAlerts()
	}
	if r.frames%r.broadcastEvery == 0 {
		r.broadcastState()
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		clientID := fmt.Sprintf("c%d", r.nextID)
		r.nextID++
		r.clients[clientID] = c.Conn
		r.sendWelcome(c.Conn, clientID)
		r.sendStateTo(c.Conn)
		c.Reply <- JoinResult{ClientID: clientID}
	case Pointer:
		if _, ok := r.clients[c.ClientID]; !ok {
			return
		}
		r.pointer = c.Pointer
		r.pointerDirty = true
	case Control:
		if _, ok := r.clients[c.ClientID]; !ok {
			return
		}
		switch c.Cmd {
		case protocol.CtrlPause:
			r.sim.Paused = true
		case protocol.CtrlResume:
			r.sim.Paused = false
		case protocol.CtrlReset:
			r.sim.Reset()
			r.broadcastState()
		}
	case Leave:
		r.handleLeave(c.ClientID)
	}
}

func (r *Room) handleLeave(clientID string) {
	c, ok := r.clients[clientID]
	if ok {
		_ = c.Close()
		delete(r.clients, clientID)
	}
	if len(r.clients) == 0 && r.OnEmpty != nil && r.Code != "" {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) removeClient(clientID string) {
	if c, ok := r.clients[clientID]; ok {
		_ = c.Close()
	}
	delete(r.clients, clientID)
}

func (r *Room) sendWelcome(c Conn, clientID string) {
	t := r.sim.Tuning
	zones := make([]protocol.ZoneSnapshot, 0, len(r.sim.Zones))
	for _, z := range r.sim.Zones {
		zones = append(zones, protocol.ZoneSnapshot{
			Label: z.Label,
			MinX:  z.MinX,
			MaxX:  z.MaxX,
			Mult:  z.Mult,
		})
	}
	b, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		ClientID:    clientID,
		TickHz:      r.tickHz,
		BoardWidth:  t.BoardWidth,
		BoardHeight: t.BoardHeight,
		PuckRadius:  t.PuckRadius,
		TargetWidth: t.TargetWidth,
		Zones:       zones,
	})
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (r *Room) broadcastState() {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}
	r.broadcast(b)
}

func (r *Room) broadcastAlerts() {
	active := r.sim.ActiveAlerts()
	if active == nil {
		active = []string{}
	}
	b, err := protocol.Encode(protocol.MsgAlerts, protocol.Alerts{Active: active})
	if err != nil {
		return
	}
	r.broadcast(b)
}

func (r *Room) broadcast(b []byte) {
	var failed []string
	for id, c := range r.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.removeClient(id)
	}
}

func (r *Room) sendStateTo(c Conn) {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (r *Room) buildSnapshot() protocol.State {
	snapshot := protocol.State{
		Tick:     r.sim.Tick,
		Paused:   r.sim.Paused,
		Pucks:    make([]protocol.PuckSnapshot, 0, len(r.sim.Pucks)),
		Hold:     r.sim.HoldDuration(),
		BestHold: r.sim.BestHold(),
		AllHeld:  r.sim.AllHeld(),
	}
	for _, p := range r.sim.Pucks {
		snapshot.Pucks = append(snapshot.Pucks, protocol.PuckSnapshot{
			ID:  p.ID,
			X:   p.X,
			Y:   p.Y,
			VX:  p.VX,
			VY:  p.VY,
			Hue: p.Hue,
		})
	}
	st := r.sim.Stick
	snapshot.Stick = protocol.StickSnapshot{X: st.X, Y: st.Y, Active: st.Active}
	return snapshot
}
