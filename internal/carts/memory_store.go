package carts

import (
	"context"
	"sync"
)

// MemoryStore implements Store with in-memory storage, for tests and for
// running the service without redis.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string]*Cart),
	}
}

func (s *MemoryStore) Get(_ context.Context, customerID string) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, exists := s.carts[customerID]
	if !exists {
		return nil, ErrCartNotFound
	}
	copied := *cart
	copied.Lines = append([]Line(nil), cart.Lines...)
	return &copied, nil
}

func (s *MemoryStore) Save(_ context.Context, cart *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *cart
	copied.Lines = append([]Line(nil), cart.Lines...)
	s.carts[cart.CustomerID] = &copied
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, customerID)
	return nil
}
