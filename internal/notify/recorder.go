package notify

import (
	"sync"

	"github.com/efreitasn/auctionhouse/internal/domain"
)

// Recorder keeps every event it is given. It is the notifier used by
// tests; assertions should check membership, not order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// AuctionOpened records an auction.opened event.
func (r *Recorder) AuctionOpened(address string, lot int) {
	r.record(newEvent(EventAuctionOpened, address, lot))
}

// BidAccepted records a bid.accepted event with its amount.
func (r *Recorder) BidAccepted(address string, lot int, amount domain.Money) {
	r.record(bidEvent(address, lot, amount))
}

// LotSold records a lot.sold event.
func (r *Recorder) LotSold(address string, lot int) {
	r.record(newEvent(EventLotSold, address, lot))
}

// LotUnsold records a lot.unsold event.
func (r *Recorder) LotUnsold(address string, lot int) {
	r.record(newEvent(EventLotUnsold, address, lot))
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]Event, len(r.events))
	copy(result, r.events)
	return result
}

// Recipients returns how many times each address received an event of
// the given type for lot.
func (r *Recorder) Recipients(eventType string, lot int) map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]int)
	for _, ev := range r.events {
		if ev.Type == eventType && ev.LotNumber == lot {
			counts[ev.Address]++
		}
	}
	return counts
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
