package match

import (
	"fmt"
	"sync"
	"time"
)

// SessionID uniquely identifies a connected session (e.g., an SSH
// connection). Local play uses a single implicit session.
type SessionID string

// NewSessionID derives a unique session ID from a username.
func NewSessionID(user string) SessionID {
	return SessionID(fmt.Sprintf("%s-%d", user, time.Now().UnixNano()))
}

// SessionInfo describes one live session.
type SessionInfo struct {
	ID          SessionID
	User        string
	Remote      string
	ConnectedAt time.Time
}

// SessionRegistry tracks active sessions.
// Thread-safe for concurrent access from connection handlers.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[SessionID]SessionInfo
}

// NewSessionRegistry creates a new session registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[SessionID]SessionInfo),
	}
}

// Register adds a session to the registry.
func (r *SessionRegistry) Register(info SessionInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[info.ID] = info
}

// Unregister removes a session from the registry.
func (r *SessionRegistry) Unregister(id SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get retrieves a session by ID.
func (r *SessionRegistry) Get(id SessionID) (SessionInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.sessions[id]
	return info, ok
}

// Count returns the number of registered sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
