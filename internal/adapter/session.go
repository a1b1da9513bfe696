package adapter

import (
	"strings"
	"sync"
)

// Session holds the bearer token shared by the ledger and blob store
// adapters. It is safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	token string
}

func NewSession() *Session {
	return &Session{}
}

// SetToken stores token (whitespace-trimmed) for subsequent authenticated
// requests.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

// Token returns the stored bearer token or an empty string.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
