package engine

import (
	"sort"
	"time"

	"github.com/efreitasn/auctionhouse/internal/domain"
)

// SessionView is a read-only copy of an open session's state.
type SessionView struct {
	LotNumber      int
	AuctioneerName string
	HighestBid     domain.Money
	HighestBidder  string   // empty before the first bid
	Bidders        []string // interested-buyer snapshot, sorted by name
	OpenedAt       time.Time
}

// Session returns the state of the open session for a lot. It returns
// domain.ErrLotNotFound for an uncatalogued lot and
// domain.ErrLotNotInAuction when no session is open.
func (e *Engine) Session(lotNumber int) (*SessionView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.catalogue.Lot(lotNumber); err != nil {
		return nil, err
	}
	a, ok := e.auctions.Get(lotNumber)
	if !ok {
		return nil, domain.ErrLotNotInAuction
	}

	view := &SessionView{
		LotNumber:      a.LotNumber,
		AuctioneerName: a.AuctioneerName,
		HighestBid:     a.HighestBid,
		Bidders:        make([]string, 0, len(a.Interested)),
		OpenedAt:       a.OpenedAt,
	}
	if a.HighestBidder != nil {
		view.HighestBidder = a.HighestBidder.Name
	}
	for name := range a.Interested {
		view.Bidders = append(view.Bidders, name)
	}
	sort.Strings(view.Bidders)
	return view, nil
}
