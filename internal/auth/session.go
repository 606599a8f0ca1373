package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is server-side proof of an admin login. Expiry is absolute from
// creation, not sliding.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore holds admin sessions in memory, keyed by session id. State is
// process-local and lost on restart.
type SessionStore struct {
	ttl      time.Duration
	mu       sync.Mutex
	sessions map[string]Session
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Create registers a new session and returns it.
func (s *SessionStore) Create() Session {
	now := time.Now()
	sess := Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Valid reports whether id names a live session. Expired entries are dropped
// on the way out, so a replayed cookie fails even if the token itself has
// not been pruned.
func (s *SessionStore) Valid(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, id)
		return false
	}
	return true
}

// Destroy removes the session. Destroying an unknown id is a no-op.
func (s *SessionStore) Destroy(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// TTL returns the configured absolute session lifetime.
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}
