package handler

import (
	"net/http"
	"time"

	"github.com/efreitasn/auctionhouse/internal/domain"
	"github.com/efreitasn/auctionhouse/internal/engine"
	"github.com/efreitasn/auctionhouse/internal/service"
)

// AuctionHandler handles HTTP requests for running auctions.
type AuctionHandler struct {
	svc *service.AuctionService
}

// NewAuctionHandler creates a new AuctionHandler.
func NewAuctionHandler(svc *service.AuctionService) *AuctionHandler {
	return &AuctionHandler{svc: svc}
}

type openAuctionRequest struct {
	AuctioneerName    string `json:"auctioneer_name"`
	AuctioneerAddress string `json:"auctioneer_address"`
	LotNumber         int    `json:"lot_number"`
}

type bidRequest struct {
	BuyerName string       `json:"buyer_name"`
	Amount    domain.Money `json:"amount"`
}

type closeAuctionRequest struct {
	AuctioneerName string `json:"auctioneer_name"`
}

// sessionResponse is the JSON view of a running auction.
type sessionResponse struct {
	LotNumber      int           `json:"lot_number"`
	AuctioneerName string        `json:"auctioneer_name"`
	HighestBid     *domain.Money `json:"highest_bid"`
	HighestBidder  *string       `json:"highest_bidder"`
	Bidders        []string      `json:"bidders"`
	OpenedAt       string        `json:"opened_at"`
}

type bidResponse struct {
	LotNumber int          `json:"lot_number"`
	BuyerName string       `json:"buyer_name"`
	Amount    domain.Money `json:"amount"`
}

// closeResponse carries the settlement figures only when the lot sold.
type closeResponse struct {
	LotNumber      int           `json:"lot_number"`
	Outcome        string        `json:"outcome"`
	HammerPrice    *domain.Money `json:"hammer_price,omitempty"`
	Winner         string        `json:"winner,omitempty"`
	BuyerCharge    *domain.Money `json:"buyer_charge,omitempty"`
	SellerProceeds *domain.Money `json:"seller_proceeds,omitempty"`
}

func toSessionResponse(v *engine.SessionView) sessionResponse {
	resp := sessionResponse{
		LotNumber:      v.LotNumber,
		AuctioneerName: v.AuctioneerName,
		Bidders:        v.Bidders,
		OpenedAt:       v.OpenedAt.UTC().Format(time.RFC3339),
	}
	if v.HighestBidder != "" {
		bid := v.HighestBid
		bidder := v.HighestBidder
		resp.HighestBid = &bid
		resp.HighestBidder = &bidder
	}
	return resp
}

func toCloseResponse(res *engine.CloseResult) closeResponse {
	resp := closeResponse{
		LotNumber: res.LotNumber,
		Outcome:   string(res.Outcome),
	}
	if res.Outcome != engine.OutcomeNoSale {
		hammer, charge, proceeds := res.HammerPrice, res.BuyerCharge, res.SellerProceeds
		resp.HammerPrice = &hammer
		resp.Winner = res.Winner
		resp.BuyerCharge = &charge
		resp.SellerProceeds = &proceeds
	}
	return resp
}

// Open handles POST /auctions.
func (h *AuctionHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openAuctionRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	err := h.svc.Open(r.Context(), service.OpenAuctionRequest{
		AuctioneerName:    req.AuctioneerName,
		AuctioneerAddress: req.AuctioneerAddress,
		LotNumber:         req.LotNumber,
	})
	if err != nil {
		mapError(w, err)
		return
	}

	view, err := h.svc.Session(req.LotNumber)
	if err != nil {
		mapError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, toSessionResponse(view))
}

// Get handles GET /auctions/{lot_number}.
func (h *AuctionHandler) Get(w http.ResponseWriter, r *http.Request) {
	lot, ok := lotNumberParam(w, r)
	if !ok {
		return
	}

	view, err := h.svc.Session(lot)
	if err != nil {
		mapError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, toSessionResponse(view))
}

// Bid handles POST /auctions/{lot_number}/bids.
func (h *AuctionHandler) Bid(w http.ResponseWriter, r *http.Request) {
	lot, ok := lotNumberParam(w, r)
	if !ok {
		return
	}

	var req bidRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	err := h.svc.Bid(r.Context(), service.BidRequest{
		BuyerName: req.BuyerName,
		LotNumber: lot,
		Amount:    req.Amount,
	})
	if err != nil {
		mapError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, bidResponse{LotNumber: lot, BuyerName: req.BuyerName, Amount: req.Amount})
}

// Close handles POST /auctions/{lot_number}/close.
func (h *AuctionHandler) Close(w http.ResponseWriter, r *http.Request) {
	lot, ok := lotNumberParam(w, r)
	if !ok {
		return
	}

	var req closeAuctionRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.svc.Close(r.Context(), req.AuctioneerName, lot)
	if err != nil {
		mapError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, toCloseResponse(result))
}
