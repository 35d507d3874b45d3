// pkg/memcache/share_tokens.go
package mem

import (
	"sync"
	"time"
)

type ShareTokenStore interface {
	Set(token string, planID string, ttl time.Duration)

	// Peek returns the planID for token if not expired. Share links stay
	// valid for multiple reads until the TTL runs out.
	Peek(token string) (string, bool)

	// Revoke removes a token before its TTL elapses.
	Revoke(token string)
}

type entry struct {
	planID    string
	expiresAt time.Time
}

type ShareTokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewShareTokens() *ShareTokens {
	return &ShareTokens{
		data: make(map[string]entry),
	}
}

func (s *ShareTokens) Set(token string, planID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{
		planID:    planID,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *ShareTokens) Peek(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, token) // cleanup expired
		return "", false
	}
	return e.planID, true
}

func (s *ShareTokens) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, token)
}
