package credstore

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/tripjournal/internal/models"
)

// MemoryStore lives only as long as the process.
type MemoryStore struct {
	mu    sync.Mutex
	token *models.AuthToken
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, token models.AuthToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = &token
	return nil
}

func (s *MemoryStore) Load(_ context.Context) (*models.AuthToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return nil, nil
	}
	t := *s.token
	return &t, nil
}

func (s *MemoryStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
	return nil
}
