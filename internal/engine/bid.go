package engine

import (
	"log/slog"

	"github.com/efreitasn/auctionhouse/internal/domain"
)

// MakeBid submits a bid on a lot under auction.
//
// A bid is too low when it beats the current highest bid by no more than
// the increment. The opening bid of a session is exempt: while the highest
// bid is still zero any amount is accepted, even one below the reserve or
// the increment. This asymmetry is house policy.
func (e *Engine) MakeBid(buyerName string, lotNumber int, amount domain.Money) error {
	e.logger.Debug("message in",
		slog.String("op", "makeBid"),
		slog.String("buyer", buyerName),
		slog.Int("lot", lotNumber),
		slog.String("amount", amount.String()),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.buyers.Exists(buyerName) {
		return domain.ErrBuyerNotFound
	}
	status, err := e.catalogue.Status(lotNumber)
	if err != nil {
		return err
	}
	if status != domain.LotStatusInAuction {
		return domain.ErrLotNotInAuction
	}
	auction, ok := e.auctions.Get(lotNumber)
	if !ok {
		return domain.ErrLotNotInAuction
	}
	bidder, ok := auction.Bidder(buyerName)
	if !ok {
		return domain.ErrBuyerNotInterested
	}

	if !acceptable(auction.HighestBid, amount, e.params.Increment) {
		return domain.ErrBidTooLow
	}

	auction.HighestBid = amount
	auction.HighestBidder = bidder

	e.notifier.BidAccepted(auction.Seller.Address, lotNumber, amount)
	for _, b := range auction.Interested {
		if b.Name != buyerName {
			e.notifier.BidAccepted(b.Address, lotNumber, amount)
		}
	}
	e.notifier.BidAccepted(auction.AuctioneerAddress, lotNumber, amount)

	e.logger.Info("bid accepted",
		slog.String("buyer", buyerName),
		slog.Int("lot", lotNumber),
		slog.String("amount", amount.String()),
	)
	return nil
}

// acceptable applies the increment rule to a bid against the current
// highest bid.
func acceptable(current, bid, increment domain.Money) bool {
	if current.IsZero() {
		return true
	}
	return !bid.Sub(current).LessEqual(increment)
}
