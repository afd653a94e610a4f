// Package memstore holds the in-memory reactive stores. Every mutation
// publishes a typed event on the bus so subscribers can track state
// without polling.
package memstore

import (
	"sync"

	"travelbook/domain/auth"
	"travelbook/domain/events"
)

// SessionStore keeps the current session and auth progress flags
type SessionStore struct {
	mu      sync.RWMutex
	session *auth.Session
	status  auth.AuthStatus
	bus     events.Bus
}

// NewSessionStore creates an empty session store
func NewSessionStore(bus events.Bus) *SessionStore {
	return &SessionStore{bus: bus}
}

// Session returns the current session, or nil when signed out
func (s *SessionStore) Session() *auth.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil
	}
	copied := *s.session
	return &copied
}

// Status returns the current auth progress flags
func (s *SessionStore) Status() auth.AuthStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// SetSession replaces the current session and publishes the change.
// A nil session means signed out.
func (s *SessionStore) SetSession(session *auth.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.bus.Publish(events.SessionChanged{Session: session})
}

// SetStatus flips one auth progress flag and publishes the change
func (s *SessionStore) SetStatus(key auth.StatusKey, value bool) {
	s.mu.Lock()
	switch key {
	case auth.StatusIsLoading:
		s.status.IsLoading = value
	}
	s.mu.Unlock()

	s.bus.Publish(events.SessionStatusChanged{Key: key, Value: value})
}
