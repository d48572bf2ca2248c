package handler

import (
	"net/http"

	"github.com/efreitasn/auctionhouse/internal/domain"
	"github.com/efreitasn/auctionhouse/internal/service"
)

// LotHandler handles HTTP requests for the catalogue.
type LotHandler struct {
	svc *service.CatalogueService
}

// NewLotHandler creates a new LotHandler.
func NewLotHandler(svc *service.CatalogueService) *LotHandler {
	return &LotHandler{svc: svc}
}

type addLotRequest struct {
	SellerName   string       `json:"seller_name"`
	LotNumber    int          `json:"lot_number"`
	Description  string       `json:"description"`
	ReservePrice domain.Money `json:"reserve_price"`
}

type noteInterestRequest struct {
	BuyerName string `json:"buyer_name"`
}

type lotResponse struct {
	LotNumber   int    `json:"lot_number"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type catalogueResponse struct {
	Lots []lotResponse `json:"lots"`
}

type interestResponse struct {
	BuyerName string `json:"buyer_name"`
	LotNumber int    `json:"lot_number"`
}

func toLotResponse(e domain.CatalogueEntry) lotResponse {
	return lotResponse{
		LotNumber:   e.LotNumber,
		Description: e.Description,
		Status:      string(e.Status),
	}
}

// AddLot handles POST /lots.
func (h *LotHandler) AddLot(w http.ResponseWriter, r *http.Request) {
	var req addLotRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	entry, err := h.svc.AddLot(service.AddLotRequest{
		SellerName:   req.SellerName,
		LotNumber:    req.LotNumber,
		Description:  req.Description,
		ReservePrice: req.ReservePrice,
	})
	if err != nil {
		mapError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, toLotResponse(entry))
}

// List handles GET /lots.
func (h *LotHandler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.svc.ViewCatalogue()

	resp := catalogueResponse{Lots: make([]lotResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Lots = append(resp.Lots, toLotResponse(e))
	}
	WriteJSON(w, http.StatusOK, resp)
}

// Get handles GET /lots/{lot_number}.
func (h *LotHandler) Get(w http.ResponseWriter, r *http.Request) {
	lot, ok := lotNumberParam(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Entry(lot)
	if err != nil {
		mapError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, toLotResponse(entry))
}

// NoteInterest handles POST /lots/{lot_number}/interest.
func (h *LotHandler) NoteInterest(w http.ResponseWriter, r *http.Request) {
	lot, ok := lotNumberParam(w, r)
	if !ok {
		return
	}

	var req noteInterestRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.svc.NoteInterest(req.BuyerName, lot); err != nil {
		mapError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, interestResponse{BuyerName: req.BuyerName, LotNumber: lot})
}
