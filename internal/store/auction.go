package store

import (
	"sync"

	"github.com/efreitasn/auctionhouse/internal/domain"
)

// AuctionRegistry is a thread-safe set of open auction sessions.
// Primary index: lot number → session.
// Secondary index: auctioneer name → session.
type AuctionRegistry struct {
	mu           sync.RWMutex
	byLot        map[int]*domain.Auction
	byAuctioneer map[string]*domain.Auction
}

// NewAuctionRegistry creates an empty AuctionRegistry.
func NewAuctionRegistry() *AuctionRegistry {
	return &AuctionRegistry{
		byLot:        make(map[int]*domain.Auction),
		byAuctioneer: make(map[string]*domain.Auction),
	}
}

// Register adds a session. The busy-auctioneer and lot-in-auction checks
// run under the same lock as the insert. It returns
// domain.ErrAuctioneerBusy or domain.ErrLotInAuction.
func (r *AuctionRegistry) Register(a *domain.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.byAuctioneer[a.AuctioneerName]; busy {
		return domain.ErrAuctioneerBusy
	}
	if _, open := r.byLot[a.LotNumber]; open {
		return domain.ErrLotInAuction
	}
	r.byLot[a.LotNumber] = a
	r.byAuctioneer[a.AuctioneerName] = a
	return nil
}

// Get returns the open session for a lot, if any.
func (r *AuctionRegistry) Get(lot int) (*domain.Auction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byLot[lot]
	return a, ok
}

// Running returns the session the named auctioneer currently runs, if any.
func (r *AuctionRegistry) Running(auctioneer string) (*domain.Auction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byAuctioneer[auctioneer]
	return a, ok
}

// Remove deletes the session for a lot from both indexes. It is a no-op
// if no session is open for the lot.
func (r *AuctionRegistry) Remove(lot int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byLot[lot]
	if !ok {
		return
	}
	delete(r.byLot, lot)
	if r.byAuctioneer[a.AuctioneerName] == a {
		delete(r.byAuctioneer, a.AuctioneerName)
	}
}

// Len returns the number of open sessions.
func (r *AuctionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byLot)
}
