package session

import (
	"sync"

	"hoopmania/internal/domain"
)

// Session holds one user's in-flight conversation data. A session lives
// until the order is committed, the user navigates back to the main menu or
// restarts via /start.
type Session struct {
	State     domain.State
	Draft     *domain.Draft
	Broadcast *BroadcastDraft
}

// BroadcastDraft is an admin's announcement under construction.
type BroadcastDraft struct {
	Stage domain.BroadcastStage
	Photo string
	Text  string
}

// Manager owns all per-user sessions. Map access is guarded internally;
// multi-step read-modify-write transitions must additionally hold the
// per-user lock returned by UserLock, because the transport dispatches
// updates concurrently.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session

	lockMu sync.Mutex
	locks  map[int64]*sync.Mutex
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// Get returns the user's session, or nil if none exists
func (m *Manager) Get(userID int64) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[userID]
}

// Set replaces the user's session
func (m *Manager) Set(userID int64, s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = s
}

// Clear removes the user's session entirely
func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// State returns the user's conversation state, defaulting to the main menu
func (m *Manager) State(userID int64) domain.State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if s, ok := m.sessions[userID]; ok {
		return s.State
	}
	return domain.StateChoosingOption
}

// Broadcast returns the user's broadcast draft, or nil if none exists
func (m *Manager) Broadcast(userID int64) *BroadcastDraft {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if s, ok := m.sessions[userID]; ok {
		return s.Broadcast
	}
	return nil
}

// SetBroadcast attaches a broadcast draft to the user's session, creating
// the session if necessary
func (m *Manager) SetBroadcast(userID int64, b *BroadcastDraft) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		s = &Session{State: domain.StateChoosingOption}
		m.sessions[userID] = s
	}
	s.Broadcast = b
}

// ClearBroadcast drops the broadcast draft, keeping any order draft intact
func (m *Manager) ClearBroadcast(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		s.Broadcast = nil
	}
}

// UserLock returns the mutex serializing transitions for one user
func (m *Manager) UserLock(userID int64) *sync.Mutex {
	m.lockMu.Lock()
	defer m.lockMu.Unlock()

	lock, ok := m.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[userID] = lock
	}
	return lock
}
