package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// DefaultTTL is the admin session idle window. Every authenticated call
// slides the expiry forward by the full TTL.
const DefaultTTL = 8 * time.Hour

// Store is the admin session registry. It is injected wherever sessions are
// needed so that a different backend can replace the in-memory map in
// multi-instance deployments.
type Store interface {
	// Create registers a fresh session and returns its opaque token.
	Create() (string, error)
	// Validate reports whether the token names a live session. A valid
	// token's expiry is extended by the full TTL; an expired one is purged.
	Validate(token string) bool
	// Revoke removes a session; unknown tokens are a no-op.
	Revoke(token string)
	// RevokeAll clears the registry (used on account reset).
	RevokeAll()
}

// MemoryStore keeps sessions in a mutex-guarded map. Sessions do not survive
// a restart; that is deliberate for the single-instance deployment model.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates an empty registry with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]time.Time),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	s.sessions[token] = s.now().Add(s.ttl)
	s.mu.Unlock()

	return token, nil
}

func (s *MemoryStore) Validate(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.sessions[token]
	if !ok {
		return false
	}
	if !expiresAt.After(s.now()) {
		delete(s.sessions, token)
		return false
	}

	// Sliding renewal: a full TTL from this call.
	s.sessions[token] = s.now().Add(s.ttl)
	return true
}

func (s *MemoryStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func (s *MemoryStore) RevokeAll() {
	s.mu.Lock()
	s.sessions = make(map[string]time.Time)
	s.mu.Unlock()
}

// Len returns the number of live or expired-but-unpurged sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
