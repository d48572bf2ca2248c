package notify

import (
	"testing"

	"github.com/efreitasn/auctionhouse/internal/domain"
	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestHub_DeliversByAddress(t *testing.T) {
	h := NewHub()
	buyerA := h.Subscribe("@BuyerA", 4)
	buyerB := h.Subscribe("@BuyerB", 4)

	h.BidAccepted("@BuyerA", 1, domain.MustParseMoney("100.00"))

	select {
	case ev := <-buyerA.C():
		check.Equal(t, EventBidAccepted, ev.Type)
		check.Equal(t, 1, ev.LotNumber)
		assert.NotNil(t, ev.Amount)
		check.Equal(t, "100.00", ev.Amount.String())
	default:
		t.Fatal("expected an event for @BuyerA")
	}

	select {
	case ev := <-buyerB.C():
		t.Fatalf("@BuyerB should not receive %v", ev)
	default:
	}
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe("@SellerY", 1)

	h.AuctionOpened("@SellerY", 1)
	h.LotSold("@SellerY", 1)

	ev := <-sub.C()
	check.Equal(t, EventAuctionOpened, ev.Type)
	select {
	case ev := <-sub.C():
		t.Fatalf("expected the second event to be dropped, got %v", ev)
	default:
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe("@SellerY", 1)
	check.Equal(t, 1, h.Subscribers("@SellerY"))

	h.Unsubscribe(sub)
	check.Equal(t, 0, h.Subscribers("@SellerY"))

	_, open := <-sub.C()
	check.False(t, open)

	// Second unsubscribe is a no-op and must not close twice.
	h.Unsubscribe(sub)
	h.LotUnsold("@SellerY", 1)
}
