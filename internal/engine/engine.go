package engine

import (
	"log/slog"
	"sync"

	"github.com/efreitasn/auctionhouse/internal/domain"
	"github.com/efreitasn/auctionhouse/internal/store"
)

// Notifier delivers auction events to an address. Calls are
// fire-and-forget: delivery failures never reach the engine.
type Notifier interface {
	AuctionOpened(address string, lot int)
	BidAccepted(address string, lot int, amount domain.Money)
	LotSold(address string, lot int)
	LotUnsold(address string, lot int)
}

// Ledger moves funds between named accounts. A nil error means the
// transfer succeeded; any error is treated as a failed transfer.
type Ledger interface {
	Transfer(fromAccount, fromAuthCode, toAccount string, amount domain.Money) error
}

// Params are the house rules carried into the engine.
type Params struct {
	BuyerPremium  float64      // percent added to the hammer price, charged to the buyer
	Commission    float64      // percent the house keeps from the seller's proceeds
	Increment     domain.Money // a non-opening bid must beat the current bid by more than this
	HouseAccount  string
	HouseAuthCode string
}

// Engine runs the auction lifecycle: opening sessions, accepting bids and
// settling closed lots.
//
// Operations are serialized by an engine-wide lock held for the whole call,
// including Notifier and Ledger calls, so the lot-status and registry
// checks are atomic with the writes that follow them. A collaborator that
// never returns blocks every other engine operation.
type Engine struct {
	mu        sync.Mutex
	params    Params
	buyers    *store.BuyerStore
	sellers   *store.SellerStore
	catalogue *store.CatalogueStore
	auctions  *store.AuctionRegistry
	notifier  Notifier
	ledger    Ledger
	logger    *slog.Logger
}

// New creates an Engine with the given dependencies. A nil logger falls
// back to slog.Default().
func New(
	params Params,
	buyers *store.BuyerStore,
	sellers *store.SellerStore,
	catalogue *store.CatalogueStore,
	auctions *store.AuctionRegistry,
	notifier Notifier,
	ledger Ledger,
	logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		params:    params,
		buyers:    buyers,
		sellers:   sellers,
		catalogue: catalogue,
		auctions:  auctions,
		notifier:  notifier,
		ledger:    ledger,
		logger:    logger.With(slog.String("component", "engine")),
	}
}

// Params returns the house rules the engine was built with.
func (e *Engine) Params() Params {
	return e.params
}

// OpenAuction starts a bidding session for a lot. The session's bidders
// are the buyers interested in the lot at this moment; the seller and
// every one of those buyers are told the auction opened.
func (e *Engine) OpenAuction(auctioneerName, auctioneerAddress string, lotNumber int) error {
	e.logger.Debug("message in",
		slog.String("op", "openAuction"),
		slog.String("auctioneer", auctioneerName),
		slog.Int("lot", lotNumber),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	lot, err := e.catalogue.Lot(lotNumber)
	if err != nil {
		return err
	}
	if _, busy := e.auctions.Running(auctioneerName); busy {
		return domain.ErrAuctioneerBusy
	}
	if _, open := e.auctions.Get(lotNumber); open {
		return domain.ErrLotInAuction
	}
	status, err := e.catalogue.Status(lotNumber)
	if err != nil {
		return err
	}
	if status != domain.LotStatusUnsold {
		return domain.ErrLotNotAvailable
	}

	seller, err := e.sellers.Get(lot.SellerName)
	if err != nil {
		return err
	}

	auction := domain.NewAuction(auctioneerName, auctioneerAddress, lot, seller, e.buyers.InterestedIn(lotNumber))
	if err := e.auctions.Register(auction); err != nil {
		return err
	}
	if err := e.catalogue.SetStatus(lotNumber, domain.LotStatusInAuction); err != nil {
		e.auctions.Remove(lotNumber)
		return err
	}

	e.notifier.AuctionOpened(seller.Address, lotNumber)
	for _, b := range auction.Interested {
		e.notifier.AuctionOpened(b.Address, lotNumber)
	}

	e.logger.Info("auction opened",
		slog.String("auctioneer", auctioneerName),
		slog.Int("lot", lotNumber),
		slog.Int("bidders", len(auction.Interested)),
	)
	return nil
}

// NoteInterest records a buyer's interest in a lot. Interest can only be
// noted while the lot is unsold or in auction; a buyer noting interest in
// a lot already under auction is not added to that session's bidders.
func (e *Engine) NoteInterest(buyerName string, lotNumber int) error {
	e.logger.Debug("message in",
		slog.String("op", "noteInterest"),
		slog.String("buyer", buyerName),
		slog.Int("lot", lotNumber),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	buyer, err := e.buyers.Get(buyerName)
	if err != nil {
		return err
	}
	status, err := e.catalogue.Status(lotNumber)
	if err != nil {
		return err
	}
	if buyer.InterestedIn(lotNumber) {
		return domain.ErrAlreadyInterested
	}
	if status.Terminal() {
		return domain.ErrLotNotOpenForInterest
	}
	if err := e.buyers.AddInterest(buyerName, lotNumber); err != nil {
		return err
	}

	e.logger.Info("interest noted", slog.String("buyer", buyerName), slog.Int("lot", lotNumber))
	return nil
}
