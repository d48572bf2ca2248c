package notify

import (
	"sync"

	"github.com/efreitasn/auctionhouse/internal/domain"
)

// Subscription receives the events addressed to one address.
type Subscription struct {
	address string
	ch      chan Event
}

// C returns the channel events are delivered on. It is closed by
// Hub.Unsubscribe.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

// Hub fans events out to live subscribers, such as websocket clients,
// keyed by address. Sends never block: a subscriber whose buffer is full
// misses the event.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{}
}

// NewHub creates a Hub with no subscribers.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*Subscription]struct{})}
}

// Subscribe registers a subscriber for address with the given channel
// buffer size.
func (h *Hub) Subscribe(address string, buffer int) *Subscription {
	sub := &Subscription{address: address, ch: make(chan Event, buffer)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[address] == nil {
		h.subs[address] = make(map[*Subscription]struct{})
	}
	h.subs[address][sub] = struct{}{}
	return sub
}

// Unsubscribe removes sub and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.subs[sub.address]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.subs, sub.address)
	}
	close(sub.ch)
}

// Subscribers returns the number of live subscriptions for address.
func (h *Hub) Subscribers(address string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[address])
}

func (h *Hub) broadcast(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs[ev.Address] {
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

// AuctionOpened sends an auction.opened event to address's subscribers.
func (h *Hub) AuctionOpened(address string, lot int) {
	h.broadcast(newEvent(EventAuctionOpened, address, lot))
}

// BidAccepted sends a bid.accepted event carrying amount to address's subscribers.
func (h *Hub) BidAccepted(address string, lot int, amount domain.Money) {
	h.broadcast(bidEvent(address, lot, amount))
}

// LotSold sends a lot.sold event to address's subscribers.
func (h *Hub) LotSold(address string, lot int) {
	h.broadcast(newEvent(EventLotSold, address, lot))
}

// LotUnsold sends a lot.unsold event to address's subscribers.
func (h *Hub) LotUnsold(address string, lot int) {
	h.broadcast(newEvent(EventLotUnsold, address, lot))
}
