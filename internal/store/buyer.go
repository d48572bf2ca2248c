package store

import (
	"sync"

	"github.com/efreitasn/auctionhouse/internal/domain"
)

// BuyerStore is a thread-safe in-memory store for buyers, keyed by name.
// It also owns every buyer's interest set.
type BuyerStore struct {
	mu     sync.RWMutex
	buyers map[string]*domain.Buyer
}

// NewBuyerStore creates an empty BuyerStore.
func NewBuyerStore() *BuyerStore {
	return &BuyerStore{
		buyers: make(map[string]*domain.Buyer),
	}
}

// Create adds a buyer to the store. It returns
// domain.ErrBuyerAlreadyExists if the name is taken.
func (s *BuyerStore) Create(b *domain.Buyer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.buyers[b.Name]; exists {
		return domain.ErrBuyerAlreadyExists
	}
	if b.Interests == nil {
		b.Interests = make(map[int]struct{})
	}
	s.buyers[b.Name] = b
	return nil
}

// Get retrieves a buyer by name. It returns domain.ErrBuyerNotFound if
// the buyer does not exist.
func (s *BuyerStore) Get(name string) (*domain.Buyer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.buyers[name]
	if !ok {
		return nil, domain.ErrBuyerNotFound
	}
	return b, nil
}

// Exists returns true if a buyer with the given name exists.
func (s *BuyerStore) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.buyers[name]
	return ok
}

// AddInterest records that the named buyer is interested in lot. It
// returns domain.ErrBuyerNotFound or domain.ErrAlreadyInterested.
func (s *BuyerStore) AddInterest(name string, lot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buyers[name]
	if !ok {
		return domain.ErrBuyerNotFound
	}
	if b.InterestedIn(lot) {
		return domain.ErrAlreadyInterested
	}
	b.Interests[lot] = struct{}{}
	return nil
}

// InterestedIn returns every buyer whose interest set contains lot.
// The result has no particular order.
func (s *BuyerStore) InterestedIn(lot int) []*domain.Buyer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Buyer, 0)
	for _, b := range s.buyers {
		if b.InterestedIn(lot) {
			result = append(result, b)
		}
	}
	return result
}
