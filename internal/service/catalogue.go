package service

import (
	"log/slog"

	"github.com/efreitasn/auctionhouse/internal/domain"
	"github.com/efreitasn/auctionhouse/internal/engine"
	"github.com/efreitasn/auctionhouse/internal/store"
)

const maxDescriptionLength = 256

// AddLotRequest represents the input for adding a lot to the catalogue.
type AddLotRequest struct {
	SellerName   string
	LotNumber    int
	Description  string
	ReservePrice domain.Money
}

// CatalogueService handles the lot catalogue and buyer interest.
type CatalogueService struct {
	sellers   *store.SellerStore
	catalogue *store.CatalogueStore
	engine    *engine.Engine
	logger    *slog.Logger
}

// NewCatalogueService creates a new CatalogueService. Interest is routed
// through the engine so it is serialized with auction openings.
func NewCatalogueService(
	sellers *store.SellerStore,
	catalogue *store.CatalogueStore,
	eng *engine.Engine,
	logger *slog.Logger,
) *CatalogueService {
	return &CatalogueService{
		sellers:   sellers,
		catalogue: catalogue,
		engine:    eng,
		logger:    logger,
	}
}

// AddLot validates the request and catalogues the lot as unsold.
func (s *CatalogueService) AddLot(req AddLotRequest) (domain.CatalogueEntry, error) {
	s.logger.Debug("message in",
		slog.String("op", "addLot"),
		slog.String("seller", req.SellerName),
		slog.Int("lot", req.LotNumber),
	)

	if req.LotNumber <= 0 {
		return domain.CatalogueEntry{}, &domain.ValidationError{Message: "lot_number must be > 0"}
	}
	if len(req.Description) > maxDescriptionLength {
		return domain.CatalogueEntry{}, &domain.ValidationError{Message: "description must be at most 256 characters"}
	}
	if req.ReservePrice < 0 {
		return domain.CatalogueEntry{}, &domain.ValidationError{Message: "reserve_price must be >= 0"}
	}
	if req.ReservePrice > domain.MaxAmount {
		return domain.CatalogueEntry{}, &domain.ValidationError{Message: "reserve_price must be at most " + domain.MaxAmount.String()}
	}
	if !s.sellers.Exists(req.SellerName) {
		return domain.CatalogueEntry{}, domain.ErrSellerNotFound
	}

	lot := &domain.Lot{
		SellerName:   req.SellerName,
		Number:       req.LotNumber,
		Description:  req.Description,
		ReservePrice: req.ReservePrice,
	}
	if err := s.catalogue.Add(lot); err != nil {
		return domain.CatalogueEntry{}, err
	}

	s.logger.Info("lot added", slog.String("seller", req.SellerName), slog.Int("lot", req.LotNumber))
	return s.catalogue.Entry(req.LotNumber)
}

// ViewCatalogue returns every catalogued lot ordered by lot number.
func (s *CatalogueService) ViewCatalogue() []domain.CatalogueEntry {
	s.logger.Debug("message in", slog.String("op", "viewCatalogue"))
	return s.catalogue.List()
}

// Entry returns the catalogue entry for a single lot.
func (s *CatalogueService) Entry(lotNumber int) (domain.CatalogueEntry, error) {
	return s.catalogue.Entry(lotNumber)
}

// NoteInterest records that the buyer wants to be told about the lot.
func (s *CatalogueService) NoteInterest(buyerName string, lotNumber int) error {
	if err := validateName(buyerName); err != nil {
		return err
	}
	return s.engine.NoteInterest(buyerName, lotNumber)
}
