package bank

import (
	"fmt"
	"sync"
	"time"

	"github.com/efreitasn/auctionhouse/internal/domain"
	"github.com/google/uuid"
)

// MemoryLedger is an in-process ledger that records every transfer it is
// asked to make. Failures are injected with FailWhen. It backs tests and
// runs as the default ledger when no bank URL is configured.
type MemoryLedger struct {
	mu        sync.Mutex
	attempts  []Transfer
	completed []Transfer
	failWhen  func(Transfer) bool
}

// NewMemoryLedger creates a ledger that accepts every transfer.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

// FailWhen makes every transfer matching pred fail. A nil pred clears it.
func (l *MemoryLedger) FailWhen(pred func(Transfer) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failWhen = pred
}

// FailFrom makes every transfer out of account fail.
func (l *MemoryLedger) FailFrom(account string) {
	l.FailWhen(func(t Transfer) bool { return t.FromAccount == account })
}

// Transfer records the request and, unless a failure is injected,
// completes it.
func (l *MemoryLedger) Transfer(fromAccount, fromAuthCode, toAccount string, amount domain.Money) error {
	t := Transfer{
		ID:           uuid.New().String(),
		FromAccount:  fromAccount,
		FromAuthCode: fromAuthCode,
		ToAccount:    toAccount,
		Amount:       amount,
		RequestedAt:  time.Now(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.attempts = append(l.attempts, t)
	if l.failWhen != nil && l.failWhen(t) {
		return fmt.Errorf("%s → %s %s: %w", fromAccount, toAccount, amount, ErrTransferRejected)
	}
	l.completed = append(l.completed, t)
	return nil
}

// Attempts returns every transfer requested, including failed ones.
func (l *MemoryLedger) Attempts() []Transfer {
	l.mu.Lock()
	defer l.mu.Unlock()
	result := make([]Transfer, len(l.attempts))
	copy(result, l.attempts)
	return result
}

// Completed returns the transfers that went through.
func (l *MemoryLedger) Completed() []Transfer {
	l.mu.Lock()
	defer l.mu.Unlock()
	result := make([]Transfer, len(l.completed))
	copy(result, l.completed)
	return result
}

// Balance returns the net amount moved into account by completed
// transfers.
func (l *MemoryLedger) Balance(account string) domain.Money {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total domain.Money
	for _, t := range l.completed {
		if t.ToAccount == account {
			total = total.Add(t.Amount)
		}
		if t.FromAccount == account {
			total = total.Sub(t.Amount)
		}
	}
	return total
}
