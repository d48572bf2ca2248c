package domain

import "errors"

// Sentinel errors for precondition failures. Each message is the
// human-readable reason handed back to the caller; the handler layer maps
// them to HTTP status codes.
var (
	ErrBuyerAlreadyExists    = errors.New("buyer with this name is already registered")
	ErrBuyerNotFound         = errors.New("buyer is not registered")
	ErrSellerAlreadyExists   = errors.New("seller with this name is already registered")
	ErrSellerNotFound        = errors.New("seller is not registered")
	ErrLotAlreadyExists      = errors.New("lot with this number already exists")
	ErrLotNotFound           = errors.New("lot is not in the catalogue")
	ErrAlreadyInterested     = errors.New("buyer already noted interest in this lot")
	ErrLotNotOpenForInterest = errors.New("lot is no longer open for interest")
	ErrLotNotAvailable       = errors.New("lot cannot be put up for auction")
	ErrLotInAuction          = errors.New("lot is already being sold in another auction")
	ErrAuctioneerBusy        = errors.New("auctioneer is already running a different auction")
	ErrLotNotInAuction       = errors.New("lot is not being auctioned")
	ErrBuyerNotInterested    = errors.New("buyer has not noted interest in the lot being auctioned")
	ErrBidTooLow             = errors.New("bid too low")
	ErrWrongAuctioneer       = errors.New("auctioneer does not run this auction")
	ErrInvalidTransition     = errors.New("invalid lot status transition")
)

// ValidationError represents a request validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
