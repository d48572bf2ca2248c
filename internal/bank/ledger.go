// Package bank provides the ledgers the settlement engine moves money
// through. Every type here satisfies engine.Ledger.
package bank

import (
	"errors"
	"time"

	"github.com/efreitasn/auctionhouse/internal/domain"
)

// ErrTransferRejected is returned when the bank refuses a transfer.
var ErrTransferRejected = errors.New("transfer rejected")

// Transfer is one account-to-account movement of funds.
type Transfer struct {
	ID           string       `json:"transfer_id"`
	FromAccount  string       `json:"from_account"`
	FromAuthCode string       `json:"from_auth_code"`
	ToAccount    string       `json:"to_account"`
	Amount       domain.Money `json:"amount"`
	RequestedAt  time.Time    `json:"requested_at"`
}
