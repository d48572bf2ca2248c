package store

import (
	"fmt"
	"sync"

	"github.com/efreitasn/auctionhouse/internal/domain"
	"github.com/google/btree"
)

// catalogueItem is one lot plus its mutable status. Items are ordered in
// the tree by lot number only.
type catalogueItem struct {
	lot    *domain.Lot
	status domain.LotStatus
}

func lotLess(a, b *catalogueItem) bool {
	return a.lot.Number < b.lot.Number
}

// CatalogueStore is a thread-safe, lot-number ordered collection of lots.
// Lot numbers are unique for the lifetime of the store.
type CatalogueStore struct {
	mu    sync.RWMutex
	items *btree.BTreeG[*catalogueItem]
}

// NewCatalogueStore creates an empty CatalogueStore.
func NewCatalogueStore() *CatalogueStore {
	const degree = 16
	return &CatalogueStore{
		items: btree.NewG[*catalogueItem](degree, lotLess),
	}
}

func probe(number int) *catalogueItem {
	return &catalogueItem{lot: &domain.Lot{Number: number}}
}

// Add inserts a new lot with status LotStatusUnsold. It returns
// domain.ErrLotAlreadyExists if the lot number is taken.
func (s *CatalogueStore) Add(lot *domain.Lot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.items.Has(probe(lot.Number)) {
		return domain.ErrLotAlreadyExists
	}
	s.items.ReplaceOrInsert(&catalogueItem{lot: lot, status: domain.LotStatusUnsold})
	return nil
}

// Lot returns the lot with the given number, or domain.ErrLotNotFound.
func (s *CatalogueStore) Lot(number int) (*domain.Lot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items.Get(probe(number))
	if !ok {
		return nil, domain.ErrLotNotFound
	}
	return item.lot, nil
}

// Status returns the current status of a lot, or domain.ErrLotNotFound.
func (s *CatalogueStore) Status(number int) (domain.LotStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items.Get(probe(number))
	if !ok {
		return "", domain.ErrLotNotFound
	}
	return item.status, nil
}

// Entry returns the catalogue entry for a lot, or domain.ErrLotNotFound.
func (s *CatalogueStore) Entry(number int) (domain.CatalogueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items.Get(probe(number))
	if !ok {
		return domain.CatalogueEntry{}, domain.ErrLotNotFound
	}
	return entryOf(item), nil
}

// SetStatus moves a lot to next. Only edges allowed by
// domain.LotStatus.CanTransitionTo are accepted; anything else returns
// an error wrapping domain.ErrInvalidTransition.
func (s *CatalogueStore) SetStatus(number int, next domain.LotStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items.Get(probe(number))
	if !ok {
		return domain.ErrLotNotFound
	}
	if !item.status.CanTransitionTo(next) {
		return fmt.Errorf("lot %d %s → %s: %w", number, item.status, next, domain.ErrInvalidTransition)
	}
	item.status = next
	return nil
}

// List returns every catalogue entry in ascending lot-number order.
func (s *CatalogueStore) List() []domain.CatalogueEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.CatalogueEntry, 0, s.items.Len())
	s.items.Ascend(func(item *catalogueItem) bool {
		entries = append(entries, entryOf(item))
		return true
	})
	return entries
}

func entryOf(item *catalogueItem) domain.CatalogueEntry {
	return domain.CatalogueEntry{
		LotNumber:   item.lot.Number,
		Description: item.lot.Description,
		Status:      item.status,
	}
}
