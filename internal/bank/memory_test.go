package bank

import (
	"errors"
	"testing"

	"github.com/efreitasn/auctionhouse/internal/domain"
	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestMemoryLedger_RecordsTransfers(t *testing.T) {
	l := NewMemoryLedger()

	err := l.Transfer("BB A/C", "BB-auth", "AH A/C", domain.MustParseMoney("110.00"))
	assert.NoError(t, err)
	err = l.Transfer("AH A/C", "AH-auth", "SY A/C", domain.MustParseMoney("85.00"))
	assert.NoError(t, err)

	done := l.Completed()
	assert.Equal(t, 2, len(done))
	check.Equal(t, "BB A/C", done[0].FromAccount)
	check.Equal(t, "BB-auth", done[0].FromAuthCode)
	check.Equal(t, "AH A/C", done[0].ToAccount)
	check.Equal(t, domain.Cents(11000), done[0].Amount)
	check.NotEqual(t, done[0].ID, done[1].ID)

	check.Equal(t, domain.Cents(2500), l.Balance("AH A/C"))
	check.Equal(t, domain.Cents(8500), l.Balance("SY A/C"))
	check.Equal(t, domain.Cents(-11000), l.Balance("BB A/C"))
}

func TestMemoryLedger_InjectedFailure(t *testing.T) {
	l := NewMemoryLedger()
	l.FailFrom("BB A/C")

	err := l.Transfer("BB A/C", "BB-auth", "AH A/C", domain.MustParseMoney("110.00"))
	check.Error(t, err)
	check.True(t, errors.Is(err, ErrTransferRejected))

	check.Equal(t, 1, len(l.Attempts()))
	check.Equal(t, 0, len(l.Completed()))
	check.Equal(t, domain.Zero, l.Balance("AH A/C"))

	l.FailWhen(nil)
	check.NoError(t, l.Transfer("BB A/C", "BB-auth", "AH A/C", domain.MustParseMoney("110.00")))
	check.Equal(t, 1, len(l.Completed()))
}
