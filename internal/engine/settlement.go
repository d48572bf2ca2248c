package engine

import (
	"log/slog"

	"github.com/efreitasn/auctionhouse/internal/domain"
)

// Outcome is the kind of a successful close.
type Outcome string

const (
	// OutcomeSale means both transfers went through and the lot is sold.
	OutcomeSale Outcome = "sale"
	// OutcomeNoSale means the reserve was not met and the lot is unsold again.
	OutcomeNoSale Outcome = "no_sale"
	// OutcomeSalePendingPayment means a transfer failed; the lot is sold
	// but money is still owed.
	OutcomeSalePendingPayment Outcome = "sale_pending_payment"
)

// CloseResult describes how a session ended.
type CloseResult struct {
	LotNumber      int
	Outcome        Outcome
	HammerPrice    domain.Money // highest bid at close, zero when no bid was made
	Winner         string       // empty for OutcomeNoSale
	BuyerCharge    domain.Money // hammer price plus buyer premium
	SellerProceeds domain.Money // hammer price less commission
}

// CloseAuction ends the session for a lot and settles it.
//
// When the highest bid is below the reserve, or nobody bid, the lot goes
// back to unsold. A bid exactly equal to the reserve sells. Otherwise the
// buyer is charged (bid + premium) into the house account, and then the
// house pays (bid - commission) to the seller. The two transfers are not
// atomic: if either fails the lot is marked sold pending payment and no
// transfer is reversed. The session is removed on every path.
func (e *Engine) CloseAuction(auctioneerName string, lotNumber int) (*CloseResult, error) {
	e.logger.Debug("message in",
		slog.String("op", "closeAuction"),
		slog.String("auctioneer", auctioneerName),
		slog.Int("lot", lotNumber),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	status, err := e.catalogue.Status(lotNumber)
	if err != nil {
		return nil, err
	}
	if status != domain.LotStatusInAuction {
		return nil, domain.ErrLotNotInAuction
	}
	auction, ok := e.auctions.Get(lotNumber)
	if !ok {
		return nil, domain.ErrLotNotInAuction
	}
	if auction.AuctioneerName != auctioneerName {
		return nil, domain.ErrWrongAuctioneer
	}

	defer e.auctions.Remove(lotNumber)

	if !reserveMet(auction) {
		return e.closeUnsold(auction)
	}
	return e.settle(auction)
}

// reserveMet reports whether the session ends in a sale attempt.
func reserveMet(a *domain.Auction) bool {
	if !a.HasBids() {
		return false
	}
	return a.HighestBid.Cmp(a.ReservePrice) >= 0
}

func (e *Engine) closeUnsold(a *domain.Auction) (*CloseResult, error) {
	if err := e.catalogue.SetStatus(a.LotNumber, domain.LotStatusUnsold); err != nil {
		return nil, err
	}

	e.notifier.LotUnsold(a.Seller.Address, a.LotNumber)
	for _, b := range a.Interested {
		e.notifier.LotUnsold(b.Address, a.LotNumber)
	}

	e.logger.Info("lot unsold",
		slog.Int("lot", a.LotNumber),
		slog.String("highest_bid", a.HighestBid.String()),
		slog.String("reserve", a.ReservePrice.String()),
	)
	return &CloseResult{
		LotNumber:   a.LotNumber,
		Outcome:     OutcomeNoSale,
		HammerPrice: a.HighestBid,
	}, nil
}

// BuyerCharge is the amount taken from the winning buyer.
func (p Params) BuyerCharge(bid domain.Money) domain.Money {
	return bid.AddPercent(p.BuyerPremium)
}

// SellerProceeds is the amount paid out to the seller. The commission is
// (bid grown by the commission percent) minus bid, so rounding happens
// once on the grown amount.
func (p Params) SellerProceeds(bid domain.Money) domain.Money {
	commission := bid.AddPercent(p.Commission).Sub(bid)
	return bid.Sub(commission)
}

func (e *Engine) settle(a *domain.Auction) (*CloseResult, error) {
	buyer := a.HighestBidder
	result := &CloseResult{
		LotNumber:      a.LotNumber,
		HammerPrice:    a.HighestBid,
		Winner:         buyer.Name,
		BuyerCharge:    e.params.BuyerCharge(a.HighestBid),
		SellerProceeds: e.params.SellerProceeds(a.HighestBid),
	}

	if err := e.ledger.Transfer(buyer.BankAccount, buyer.BankAuthCode, e.params.HouseAccount, result.BuyerCharge); err != nil {
		e.logger.Warn("buyer payment failed",
			slog.Int("lot", a.LotNumber),
			slog.String("buyer", buyer.Name),
			slog.String("amount", result.BuyerCharge.String()),
			slog.String("error", err.Error()),
		)
		return e.pending(result)
	}

	if err := e.ledger.Transfer(e.params.HouseAccount, e.params.HouseAuthCode, a.Seller.BankAccount, result.SellerProceeds); err != nil {
		e.logger.Warn("seller payout failed",
			slog.Int("lot", a.LotNumber),
			slog.String("seller", a.Seller.Name),
			slog.String("amount", result.SellerProceeds.String()),
			slog.String("error", err.Error()),
		)
		return e.pending(result)
	}

	if err := e.catalogue.SetStatus(a.LotNumber, domain.LotStatusSold); err != nil {
		return nil, err
	}

	e.notifier.LotSold(a.Seller.Address, a.LotNumber)
	for _, b := range a.Interested {
		e.notifier.LotSold(b.Address, a.LotNumber)
	}

	e.logger.Info("lot sold",
		slog.Int("lot", a.LotNumber),
		slog.String("buyer", buyer.Name),
		slog.String("hammer_price", a.HighestBid.String()),
	)
	result.Outcome = OutcomeSale
	return result, nil
}

func (e *Engine) pending(result *CloseResult) (*CloseResult, error) {
	if err := e.catalogue.SetStatus(result.LotNumber, domain.LotStatusSoldPendingPayment); err != nil {
		return nil, err
	}
	e.logger.Info("lot sold pending payment", slog.Int("lot", result.LotNumber))
	result.Outcome = OutcomeSalePendingPayment
	return result, nil
}
