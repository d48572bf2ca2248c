package notify

import "github.com/efreitasn/auctionhouse/internal/domain"

// Notifier is the set of calls the engine makes. It mirrors
// engine.Notifier so this package does not depend on the engine.
type Notifier interface {
	AuctionOpened(address string, lot int)
	BidAccepted(address string, lot int, amount domain.Money)
	LotSold(address string, lot int)
	LotUnsold(address string, lot int)
}

// Fanout forwards every call to each of its notifiers in turn.
type Fanout []Notifier

// AuctionOpened forwards the event to every notifier in order.
func (f Fanout) AuctionOpened(address string, lot int) {
	for _, n := range f {
		n.AuctionOpened(address, lot)
	}
}

// BidAccepted forwards the event to every notifier in order.
func (f Fanout) BidAccepted(address string, lot int, amount domain.Money) {
	for _, n := range f {
		n.BidAccepted(address, lot, amount)
	}
}

// LotSold forwards the event to every notifier in order.
func (f Fanout) LotSold(address string, lot int) {
	for _, n := range f {
		n.LotSold(address, lot)
	}
}

// LotUnsold forwards the event to every notifier in order.
func (f Fanout) LotUnsold(address string, lot int) {
	for _, n := range f {
		n.LotUnsold(address, lot)
	}
}
