package session

import (
	"strings"
	"sync"
)

// Manager owns one session per device. Sessions are created lazily on first
// resolution and live for the process lifetime; the durable truth is always
// in the guest or remote store, so losing the in-memory session only costs a
// reload.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	deps     Deps
}

func NewManager(deps Deps) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		deps:     deps,
	}
}

// Resolve returns the session for a device, creating it in the Unknown
// state if this is the first time the device is seen.
func (m *Manager) Resolve(deviceID string) (*Session, bool) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, false
	}

	m.mu.RLock()
	s, ok := m.sessions[deviceID]
	m.mu.RUnlock()
	if ok {
		return s, true
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[deviceID]; ok {
		return s, true
	}
	s = newSession(deviceID, m.deps)
	m.sessions[deviceID] = s
	return s, true
}
