package handler

import (
	"net/http"

	"github.com/efreitasn/auctionhouse/internal/service"
)

// DirectoryHandler handles HTTP requests for buyer and seller registration.
type DirectoryHandler struct {
	svc *service.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(svc *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{svc: svc}
}

type registerBuyerRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	BankAccount  string `json:"bank_account"`
	BankAuthCode string `json:"bank_auth_code"`
}

type registerSellerRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	BankAccount string `json:"bank_account"`
}

// partyResponse is returned for both buyers and sellers. The bank auth
// code is never echoed.
type partyResponse struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	BankAccount string `json:"bank_account"`
}

// RegisterBuyer handles POST /buyers.
func (h *DirectoryHandler) RegisterBuyer(w http.ResponseWriter, r *http.Request) {
	var req registerBuyerRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	buyer, err := h.svc.RegisterBuyer(service.RegisterBuyerRequest{
		Name:         req.Name,
		Address:      req.Address,
		BankAccount:  req.BankAccount,
		BankAuthCode: req.BankAuthCode,
	})
	if err != nil {
		mapError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, partyResponse{
		Name:        buyer.Name,
		Address:     buyer.Address,
		BankAccount: buyer.BankAccount,
	})
}

// RegisterSeller handles POST /sellers.
func (h *DirectoryHandler) RegisterSeller(w http.ResponseWriter, r *http.Request) {
	var req registerSellerRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	seller, err := h.svc.RegisterSeller(service.RegisterSellerRequest{
		Name:        req.Name,
		Address:     req.Address,
		BankAccount: req.BankAccount,
	})
	if err != nil {
		mapError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, partyResponse{
		Name:        seller.Name,
		Address:     seller.Address,
		BankAccount: seller.BankAccount,
	})
}
