package domain

import "time"

// Auction is the live bidding session for one lot. It exists exactly while
// the lot's catalogue status is LotStatusInAuction.
type Auction struct {
	AuctioneerName    string
	AuctioneerAddress string
	LotNumber         int
	Seller            *Seller
	ReservePrice      Money
	HighestBid        Money  // starts at zero, never decreases
	HighestBidder     *Buyer // nil until the first accepted bid
	Interested        map[string]*Buyer
	OpenedAt          time.Time
}

// NewAuction creates a session with the interested-buyer snapshot taken
// from buyers.
func NewAuction(auctioneerName, auctioneerAddress string, lot *Lot, seller *Seller, buyers []*Buyer) *Auction {
	interested := make(map[string]*Buyer, len(buyers))
	for _, b := range buyers {
		interested[b.Name] = b
	}
	return &Auction{
		AuctioneerName:    auctioneerName,
		AuctioneerAddress: auctioneerAddress,
		LotNumber:         lot.Number,
		Seller:            seller,
		ReservePrice:      lot.ReservePrice,
		Interested:        interested,
		OpenedAt:          time.Now(),
	}
}

// Bidder returns the snapshot member with the given name.
func (a *Auction) Bidder(name string) (*Buyer, bool) {
	b, ok := a.Interested[name]
	return b, ok
}

// HasBids reports whether any bid has been accepted in this session.
func (a *Auction) HasBids() bool {
	return a.HighestBidder != nil
}
