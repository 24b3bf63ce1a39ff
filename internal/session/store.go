// Package session owns the client-held proof of authentication: an opaque
// bearer token persisted in the auth-token cookie. Stores are injected into
// the upstream client and auth service; nothing reads the cookie directly.
package session

import (
	"sync"
	"time"
)

// CookieName is the session cookie holding the bearer token
const CookieName = "auth-token"

// DefaultTTL is the fixed session window from issuance
const DefaultTTL = 7 * 24 * time.Hour

// Store holds the auth token for one principal. Implementations are local
// and infallible: a failed write degrades to "logged out", never an error.
type Store interface {
	// Token returns the current token, or false when no session exists
	Token() (string, bool)
	// SetToken persists the token for ttl
	SetToken(token string, ttl time.Duration)
	// Clear destroys the session
	Clear()
}

// MemoryStore is a process-local Store for tests and non-HTTP embedding.
type MemoryStore struct {
	mu      sync.RWMutex
	token   string
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", false
	}
	if !s.expires.IsZero() && time.Now().After(s.expires) {
		return "", false
	}
	return s.token, true
}

func (s *MemoryStore) SetToken(token string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if ttl > 0 {
		s.expires = time.Now().Add(ttl)
	} else {
		s.expires = time.Time{}
	}
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expires = time.Time{}
}
