package token

import (
	"context"
	"sync"
)

// MemoryStore is the in-process fallback used by tests.
type MemoryStore struct {
	mu  sync.Mutex
	tok string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tok == "" {
		return "", ErrNotFound
	}
	return s.tok, nil
}

func (s *MemoryStore) Save(_ context.Context, tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = tok
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = ""
	return nil
}
