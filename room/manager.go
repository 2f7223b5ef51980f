package room

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	"github.com/davidjames6775-beep/Supervisor-Task-Herding/game"
)

// RoomInfo is returned by the API for the server list.
type RoomInfo struct {
	Code    string `json:"code"`
	Players int    `json:"players"`
}

// Manager holds multiple rooms by code. Rooms are created on first join or
// via CreateRoom, and removed when the last client leaves. Every room starts
// from the same validated tuning.
type Manager struct {
	mu     sync.RWMutex
	rooms  map[string]*Room
	tuning game.Tuning
}

func NewManager(t game.Tuning) (*Manager, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("manager tuning: %w", err)
	}
	return &Manager{
		rooms:  make(map[string]*Room),
		tuning: t,
	}, nil
}

// GetOrCreateRoom returns the room for the given code, creating it if needed.
func (m *Manager) GetOrCreateRoom(code string) (*Room, error) {
	if code == "" {
		return nil, fmt.Errorf("empty room code")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		return r, nil
	}
	r, err := m.startRoom(code)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// CreateRoom generates a unique 6-char code, creates the room, and returns
// the code.
func (m *Manager) CreateRoom() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code := generateCode(6)
		if _, exists := m.rooms[code]; exists {
			continue
		}
		if _, err := m.startRoom(code); err != nil {
			return "", err
		}
		return code, nil
	}
}

// startRoom must be called with the lock held.
func (m *Manager) startRoom(code string) (*Room, error) {
	r, err := New(m.tuning)
	if err != nil {
		return nil, err
	}
	r.Code = code
	r.OnEmpty = func(c string) {
		m.removeRoom(c)
	}
	m.rooms[code] = r
	go r.Run()
	return r, nil
}

func (m *Manager) removeRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		r.Stop()
		delete(m.rooms, code)
	}
}

// ListRooms returns all active rooms with code and client count.
func (m *Manager) ListRooms() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoomInfo, 0, len(m.rooms))
	for code, r := range m.rooms {
		out = append(out, RoomInfo{Code: code, Players: r.NumClients()})
	}
	return out
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
