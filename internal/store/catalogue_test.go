package store

import (
	"errors"
	"testing"

	"github.com/efreitasn/auctionhouse/internal/domain"
)

func newTestLot(number int, description string) *domain.Lot {
	return &domain.Lot{
		SellerName:   "SellerY",
		Number:       number,
		Description:  description,
		ReservePrice: domain.MustParseMoney("80.00"),
	}
}

func TestCatalogueStore_AddAndList(t *testing.T) {
	s := NewCatalogueStore()

	if got := s.List(); len(got) != 0 {
		t.Fatalf("expected empty catalogue, got %d entries", len(got))
	}

	for _, lot := range []*domain.Lot{
		newTestLot(2, "Painting"),
		newTestLot(1, "Bicycle"),
		newTestLot(5, "Table"),
	} {
		if err := s.Add(lot); err != nil {
			t.Fatalf("add lot %d: %v", lot.Number, err)
		}
	}

	if err := s.Add(newTestLot(5, "Book")); err != domain.ErrLotAlreadyExists {
		t.Fatalf("expected ErrLotAlreadyExists, got %v", err)
	}

	want := []domain.CatalogueEntry{
		{LotNumber: 1, Description: "Bicycle", Status: domain.LotStatusUnsold},
		{LotNumber: 2, Description: "Painting", Status: domain.LotStatusUnsold},
		{LotNumber: 5, Description: "Table", Status: domain.LotStatusUnsold},
	}
	got := s.List()
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCatalogueStore_Lookup(t *testing.T) {
	s := NewCatalogueStore()
	_ = s.Add(newTestLot(1, "Bicycle"))

	lot, err := s.Lot(1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if lot.ReservePrice != domain.MustParseMoney("80.00") {
		t.Errorf("reserve = %s, want 80.00", lot.ReservePrice)
	}

	if _, err := s.Lot(2); err != domain.ErrLotNotFound {
		t.Fatalf("expected ErrLotNotFound, got %v", err)
	}
	if _, err := s.Status(2); err != domain.ErrLotNotFound {
		t.Fatalf("expected ErrLotNotFound, got %v", err)
	}
	if _, err := s.Entry(2); err != domain.ErrLotNotFound {
		t.Fatalf("expected ErrLotNotFound, got %v", err)
	}
}

func TestCatalogueStore_SetStatus(t *testing.T) {
	s := NewCatalogueStore()
	_ = s.Add(newTestLot(1, "Bicycle"))

	steps := []struct {
		next    domain.LotStatus
		wantErr bool
	}{
		{domain.LotStatusSold, true},
		{domain.LotStatusInAuction, false},
		{domain.LotStatusInAuction, true},
		{domain.LotStatusUnsold, false},
		{domain.LotStatusInAuction, false},
		{domain.LotStatusSoldPendingPayment, false},
		{domain.LotStatusInAuction, true},
		{domain.LotStatusUnsold, true},
	}

	for i, step := range steps {
		err := s.SetStatus(1, step.next)
		if step.wantErr {
			if !errors.Is(err, domain.ErrInvalidTransition) {
				t.Fatalf("step %d (→ %s): expected ErrInvalidTransition, got %v", i, step.next, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("step %d (→ %s): unexpected error: %v", i, step.next, err)
		}
		if got, _ := s.Status(1); got != step.next {
			t.Fatalf("step %d: status = %s, want %s", i, got, step.next)
		}
	}

	if err := s.SetStatus(9, domain.LotStatusInAuction); err != domain.ErrLotNotFound {
		t.Fatalf("expected ErrLotNotFound, got %v", err)
	}
}
