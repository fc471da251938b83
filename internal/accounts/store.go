package accounts

import (
	"errors"
	"sync"

	"github.com/Mohamed-Amiir/RiseJourny/internal/domain"
)

var ErrAccountNotFound = errors.New("account not found")

// Store holds customer accounts. Account creation policy is outside the
// checkout core; this is the collaborator implementation the service wires.
type Store interface {
	Add(account *domain.Account) error
	Get(id string) (*domain.Account, error)
}

// MemoryStore implements Store with in-memory storage.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]*domain.Account),
	}
}

func (s *MemoryStore) Add(account *domain.Account) error {
	if account.Balance < 0 {
		return domain.ErrInvalidValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
	return nil
}

func (s *MemoryStore) Get(id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, exists := s.accounts[id]
	if !exists {
		return nil, ErrAccountNotFound
	}
	return account, nil
}
