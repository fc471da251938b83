package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Mohamed-Amiir/RiseJourny/internal/domain"
)

// MemoryStore implements Store with in-memory storage.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[int64]*domain.Product
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[int64]*domain.Product),
	}
}

func (s *MemoryStore) Add(product *domain.Product) error {
	if product.Name == "" {
		return fmt.Errorf("product name must not be empty: %w", domain.ErrInvalidValue)
	}
	if product.Price < 0 || product.Stock < 0 {
		return fmt.Errorf("product %q has negative price or stock: %w", product.Name, domain.ErrInvalidValue)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = product
	return nil
}

func (s *MemoryStore) Get(id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, exists := s.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *MemoryStore) List() []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Product, 0, len(s.products))
	for _, p := range s.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
