package memory

import (
	"context"
	"strings"
	"sync"

	"eldercare-panel/internal/ports/token"
)

type tokenStore struct {
	mu    sync.RWMutex
	value string
	set   bool
}

// NewTokenStore devuelve un store en memoria: no sobrevive al proceso.
func NewTokenStore() token.Store {
	return &tokenStore{}
}

func (s *tokenStore) Get(_ context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.set, nil
}

func (s *tokenStore) Set(_ context.Context, tok string) error {
	if strings.TrimSpace(tok) == "" {
		return token.ErrEmptyToken
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = tok
	s.set = true
	return nil
}

func (s *tokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = ""
	s.set = false
	return nil
}

func (s *tokenStore) Close() error { return nil }
