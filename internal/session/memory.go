package session

import "sync"

// memoryStore is the in-process Store implementation. Sessions live
// until explicitly cleared; there is no expiry policy.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore() Store {
	return &memoryStore{
		sessions: make(map[int64]Session),
	}
}

// Get returns the user's session, or a zero session if none exists
func (m *memoryStore) Get(userID int64) Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[userID]
}

// Set replaces the user's session
func (m *memoryStore) Set(userID int64, s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = s
}

// Update applies fn to the user's session under the write lock
func (m *memoryStore) Update(userID int64, fn func(*Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sessions[userID]
	fn(&s)
	m.sessions[userID] = s
}

// Clear removes the user's session entirely
func (m *memoryStore) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// CurrentState returns the user's state tag, or StateNone
func (m *memoryStore) CurrentState(userID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[userID].State
}
