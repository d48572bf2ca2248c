// Package notify delivers auction events to sellers, buyers and
// auctioneers. Every type here satisfies engine.Notifier.
package notify

import (
	"time"

	"github.com/efreitasn/auctionhouse/internal/domain"
)

// Event types.
const (
	EventAuctionOpened = "auction.opened"
	EventBidAccepted   = "bid.accepted"
	EventLotSold       = "lot.sold"
	EventLotUnsold     = "lot.unsold"
)

// Event is one notification addressed to a single party.
type Event struct {
	Type      string        `json:"event"`
	Address   string        `json:"address"`
	LotNumber int           `json:"lot_number"`
	Amount    *domain.Money `json:"amount,omitempty"` // bid.accepted only
	At        time.Time     `json:"timestamp"`
}

func newEvent(eventType, address string, lot int) Event {
	return Event{
		Type:      eventType,
		Address:   address,
		LotNumber: lot,
		At:        time.Now().UTC().Truncate(time.Second),
	}
}

func bidEvent(address string, lot int, amount domain.Money) Event {
	ev := newEvent(EventBidAccepted, address, lot)
	ev.Amount = &amount
	return ev
}
