package service

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/efreitasn/auctionhouse/internal/domain"
	"github.com/efreitasn/auctionhouse/internal/engine"
)

var tracer = otel.Tracer("github.com/efreitasn/auctionhouse/internal/service")

// OpenAuctionRequest represents the input for opening an auction.
type OpenAuctionRequest struct {
	AuctioneerName    string
	AuctioneerAddress string
	LotNumber         int
}

// BidRequest represents a bid placed by a buyer.
type BidRequest struct {
	BuyerName string
	LotNumber int
	Amount    domain.Money
}

// AuctionService validates auction requests and traces them through the engine.
type AuctionService struct {
	engine *engine.Engine
}

// NewAuctionService creates a new AuctionService.
func NewAuctionService(eng *engine.Engine) *AuctionService {
	return &AuctionService{engine: eng}
}

// Open starts an auction of the lot run by the given auctioneer.
func (s *AuctionService) Open(ctx context.Context, req OpenAuctionRequest) error {
	_, span := tracer.Start(ctx, "auction.open", trace.WithAttributes(
		attribute.String("auctioneer", req.AuctioneerName),
		attribute.Int("lot", req.LotNumber),
	))
	defer span.End()

	if err := validateName(req.AuctioneerName); err != nil {
		return record(span, err)
	}
	if strings.TrimSpace(req.AuctioneerAddress) == "" {
		return record(span, &domain.ValidationError{Message: "auctioneer_address is required"})
	}
	if req.LotNumber <= 0 {
		return record(span, &domain.ValidationError{Message: "lot_number must be > 0"})
	}

	return record(span, s.engine.OpenAuction(req.AuctioneerName, req.AuctioneerAddress, req.LotNumber))
}

// Bid places a bid on a running auction.
func (s *AuctionService) Bid(ctx context.Context, req BidRequest) error {
	_, span := tracer.Start(ctx, "auction.bid", trace.WithAttributes(
		attribute.String("buyer", req.BuyerName),
		attribute.Int("lot", req.LotNumber),
		attribute.String("amount", req.Amount.String()),
	))
	defer span.End()

	if err := validateName(req.BuyerName); err != nil {
		return record(span, err)
	}
	if req.Amount <= 0 {
		return record(span, &domain.ValidationError{Message: "amount must be > 0"})
	}
	if req.Amount > domain.MaxAmount {
		return record(span, &domain.ValidationError{Message: "amount must be at most " + domain.MaxAmount.String()})
	}

	return record(span, s.engine.MakeBid(req.BuyerName, req.LotNumber, req.Amount))
}

// Close ends the auction and settles it when the reserve was met.
func (s *AuctionService) Close(ctx context.Context, auctioneerName string, lotNumber int) (*engine.CloseResult, error) {
	_, span := tracer.Start(ctx, "auction.close", trace.WithAttributes(
		attribute.String("auctioneer", auctioneerName),
		attribute.Int("lot", lotNumber),
	))
	defer span.End()

	if err := validateName(auctioneerName); err != nil {
		return nil, record(span, err)
	}

	result, err := s.engine.CloseAuction(auctioneerName, lotNumber)
	if err != nil {
		return nil, record(span, err)
	}
	span.SetAttributes(attribute.String("outcome", string(result.Outcome)))
	return result, nil
}

// Session returns the live state of the auction running for the lot.
func (s *AuctionService) Session(lotNumber int) (*engine.SessionView, error) {
	return s.engine.Session(lotNumber)
}

func record(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
