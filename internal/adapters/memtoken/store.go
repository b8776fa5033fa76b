package memtoken

// Package memtoken is an in-process token store for --no-persist runs and
// tests. Nothing survives the process.

import (
	"context"
	"sync"

	"github.com/eduportal/eduportal-mobile/internal/ports"
)

// Store holds the token in memory.
type Store struct {
	mu    sync.Mutex
	token string
	set   bool
}

// NewStore creates an empty in-memory token store.
func NewStore() *Store { return &Store{} }

var _ ports.TokenStore = (*Store)(nil)

func (s *Store) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = token != ""
	return nil
}

func (s *Store) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ports.ErrNoToken
	}
	return s.token, nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
