package domain

// LotStatus represents the lifecycle state of a catalogued lot.
type LotStatus string

const (
	LotStatusUnsold             LotStatus = "unsold"
	LotStatusInAuction          LotStatus = "in_auction"
	LotStatusSold               LotStatus = "sold"
	LotStatusSoldPendingPayment LotStatus = "sold_pending_payment"
)

// lotTransitions lists every legal status change. SOLD and
// SOLD_PENDING_PAYMENT have no outgoing edges.
var lotTransitions = map[LotStatus][]LotStatus{
	LotStatusUnsold:    {LotStatusInAuction},
	LotStatusInAuction: {LotStatusSold, LotStatusSoldPendingPayment, LotStatusUnsold},
}

// CanTransitionTo reports whether a lot in status s may move to next.
func (s LotStatus) CanTransitionTo(next LotStatus) bool {
	for _, allowed := range lotTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further auction may be opened for the lot.
func (s LotStatus) Terminal() bool {
	return s == LotStatusSold || s == LotStatusSoldPendingPayment
}

// Lot is an item listed for sale. ReservePrice is fixed at creation.
type Lot struct {
	SellerName   string
	Number       int
	Description  string
	ReservePrice Money
}

// CatalogueEntry is the public listing of a lot and its current status.
type CatalogueEntry struct {
	LotNumber   int
	Description string
	Status      LotStatus
}
