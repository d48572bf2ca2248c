package store

import (
	"sync"

	"github.com/efreitasn/auctionhouse/internal/domain"
)

// SellerStore is a thread-safe in-memory store for sellers, keyed by name.
type SellerStore struct {
	mu      sync.RWMutex
	sellers map[string]*domain.Seller
}

// NewSellerStore creates an empty SellerStore.
func NewSellerStore() *SellerStore {
	return &SellerStore{
		sellers: make(map[string]*domain.Seller),
	}
}

// Create adds a seller to the store. It returns
// domain.ErrSellerAlreadyExists if the name is taken.
func (s *SellerStore) Create(seller *domain.Seller) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sellers[seller.Name]; exists {
		return domain.ErrSellerAlreadyExists
	}
	s.sellers[seller.Name] = seller
	return nil
}

// Get retrieves a seller by name. It returns domain.ErrSellerNotFound if
// the seller does not exist.
func (s *SellerStore) Get(name string) (*domain.Seller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seller, ok := s.sellers[name]
	if !ok {
		return nil, domain.ErrSellerNotFound
	}
	return seller, nil
}

// Exists returns true if a seller with the given name exists.
func (s *SellerStore) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.sellers[name]
	return ok
}
