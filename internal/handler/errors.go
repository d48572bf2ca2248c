package handler

import (
	"errors"
	"net/http"

	"github.com/efreitasn/auctionhouse/internal/domain"
)

// errorMapping pairs a domain sentinel with its HTTP status and error code.
type errorMapping struct {
	err    error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{domain.ErrBuyerNotFound, http.StatusNotFound, "buyer_not_found"},
	{domain.ErrSellerNotFound, http.StatusNotFound, "seller_not_found"},
	{domain.ErrLotNotFound, http.StatusNotFound, "lot_not_found"},

	{domain.ErrBuyerAlreadyExists, http.StatusConflict, "buyer_already_exists"},
	{domain.ErrSellerAlreadyExists, http.StatusConflict, "seller_already_exists"},
	{domain.ErrLotAlreadyExists, http.StatusConflict, "lot_already_exists"},
	{domain.ErrAlreadyInterested, http.StatusConflict, "already_interested"},
	{domain.ErrLotNotOpenForInterest, http.StatusConflict, "lot_not_open_for_interest"},
	{domain.ErrLotNotAvailable, http.StatusConflict, "lot_not_available"},
	{domain.ErrLotInAuction, http.StatusConflict, "lot_in_auction"},
	{domain.ErrAuctioneerBusy, http.StatusConflict, "auctioneer_busy"},
	{domain.ErrLotNotInAuction, http.StatusConflict, "lot_not_in_auction"},
	{domain.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},

	{domain.ErrBidTooLow, http.StatusUnprocessableEntity, "bid_too_low"},
	{domain.ErrBuyerNotInterested, http.StatusUnprocessableEntity, "buyer_not_interested"},
	{domain.ErrWrongAuctioneer, http.StatusUnprocessableEntity, "wrong_auctioneer"},
}

// mapError writes the HTTP response for an error returned by a service.
func mapError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteError(w, http.StatusBadRequest, "validation_error", validationErr.Message)
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			WriteError(w, m.status, m.code, err.Error())
			return
		}
	}
	WriteError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
}
