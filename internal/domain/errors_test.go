package domain

import (
	"errors"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Message: "lot_number must be > 0"}
	if err.Error() != "lot_number must be > 0" {
		t.Errorf("Error() = %q, want %q", err.Error(), "lot_number must be > 0")
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrBuyerAlreadyExists,
		ErrBuyerNotFound,
		ErrSellerAlreadyExists,
		ErrSellerNotFound,
		ErrLotAlreadyExists,
		ErrLotNotFound,
		ErrAlreadyInterested,
		ErrLotNotOpenForInterest,
		ErrLotNotAvailable,
		ErrLotInAuction,
		ErrAuctioneerBusy,
		ErrLotNotInAuction,
		ErrBuyerNotInterested,
		ErrBidTooLow,
		ErrWrongAuctioneer,
		ErrInvalidTransition,
	}
	for i := 0; i < len(errs); i++ {
		for j := i + 1; j < len(errs); j++ {
			if errors.Is(errs[i], errs[j]) {
				t.Errorf("sentinel errors %d and %d should be distinct", i, j)
			}
		}
	}
}
