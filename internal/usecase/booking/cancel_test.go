package booking

import (
	"context"
	"testing"

	"github.com/OptiVisionCare/optic-booking/internal/httperr"
)

func TestCancelBooking(t *testing.T) {
	store := newMemStore()
	id := seedBooking(t, store)

	uc := NewCancelBooking(store, testDispatcher())
	if err := uc.Execute(context.Background(), id); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	row, ok := store.row(id)
	if !ok {
		t.Fatalf("row disappeared after cancel")
	}
	if row.Status != "Cancelled" {
		t.Errorf("Status = %q, want Cancelled", row.Status)
	}
}

func TestCancelBookingIdempotentEffect(t *testing.T) {
	store := newMemStore()
	id := seedBooking(t, store)

	uc := NewCancelBooking(store, testDispatcher())
	if err := uc.Execute(context.Background(), id); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	if err := uc.Execute(context.Background(), id); err != nil {
		t.Fatalf("second cancel: %v", err)
	}

	if store.rowCount() != 1 {
		t.Errorf("row count = %d, want 1 after double cancel", store.rowCount())
	}
	row, _ := store.row(id)
	if row.Status != "Cancelled" {
		t.Errorf("Status = %q, want Cancelled", row.Status)
	}
}

func TestCancelBookingNotFound(t *testing.T) {
	store := newMemStore()
	uc := NewCancelBooking(store, testDispatcher())

	if err := uc.Execute(context.Background(), "missing-id"); !httperr.IsBusiness(err, "booking_not_found") {
		t.Errorf("expected booking_not_found, got %v", err)
	}
}

func TestCancelBookingRequiresID(t *testing.T) {
	store := newMemStore()
	uc := NewCancelBooking(store, testDispatcher())

	if err := uc.Execute(context.Background(), " "); !httperr.IsBusiness(err, "missing_booking_id") {
		t.Errorf("expected missing_booking_id, got %v", err)
	}
}
