package network

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/davidjames6775-beep/Supervisor-Task-Herding/protocol"
	"github.com/davidjames6775-beep/Supervisor-Task-Herding/room"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	maxMsgSize   = 1 << 20 // 1MB
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler wires websocket clients into rooms.
type Handler struct {
	mgr *room.Manager
	log *slog.Logger
}

func NewHandler(mgr *room.Manager, log *slog.Logger) *Handler {
	return &Handler{mgr: mgr, log: log}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.handleWS)
	mux.HandleFunc("/api/rooms", h.handleListRooms)
	mux.HandleFunc("/api/rooms/create", h.handleCreateRoom)
	return mux
}

// wsConn adapts a websocket connection to the room.Conn interface. Sends are
// serialized; the room broadcasts from its own goroutine while the ping loop
// writes from another.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (h *Handler) handleWS(w http.ResponseWriter, req *http.Request) {
	code := req.URL.Query().Get("room")
	r, err := h.mgr.GetOrCreateRoom(code)
	if err != nil {
		http.Error(w, "missing or invalid room code", http.StatusBadRequest)
		return
	}

	raw, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		h.log.Warn("upgrade failed", "err", err)
		return
	}
	conn := &wsConn{conn: raw}
	defer conn.Close()

	raw.SetReadLimit(maxMsgSize)
	_ = raw.SetReadDeadline(time.Now().Add(pongWait))
	raw.SetPongHandler(func(string) error {
		_ = raw.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := conn.ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	hello, err := readHello(raw)
	if err != nil {
		h.log.Warn("bad hello", "err", err)
		return
	}

	reply := make(chan room.JoinResult, 1)
	r.Inbox <- room.Join{Conn: conn, Name: hello.Name, Reply: reply}
	res := <-reply
	h.log.Info("client joined", "room", code, "client", res.ClientID)

	defer func() {
		r.Inbox <- room.Leave{ClientID: res.ClientID}
		h.log.Info("client left", "room", code, "client", res.ClientID)
	}()

	for {
		_, msg, err := raw.ReadMessage()
		if err != nil {
			return
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			continue
		}
		switch env.T {
		case protocol.MsgPointer:
			p, err := protocol.DecodePayload[protocol.Pointer](env)
			if err != nil {
				continue
			}
			r.Inbox <- room.Pointer{ClientID: res.ClientID, Pointer: p}
		case protocol.MsgControl:
			c, err := protocol.DecodePayload[protocol.Control](env)
			if err != nil {
				continue
			}
			r.Inbox <- room.Control{ClientID: res.ClientID, Cmd: c.Cmd}
		}
	}
}

func readHello(raw *websocket.Conn) (protocol.Hello, error) {
	_, msg, err := raw.ReadMessage()
	if err != nil {
		return protocol.Hello{}, err
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return protocol.Hello{}, err
	}
	return protocol.DecodePayload[protocol.Hello](env)
}

func (h *Handler) handleListRooms(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, h.mgr.ListRooms())
}

func (h *Handler) handleCreateRoom(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	code, err := h.mgr.CreateRoom()
	if err != nil {
		http.Error(w, "could not create room", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"code": code})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
