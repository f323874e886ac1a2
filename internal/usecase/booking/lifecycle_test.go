package booking

import (
	"context"
	"testing"
)

// Full lifecycle: create, idempotent retry, availability, cancel,
// reschedule-with-reactivation.
func TestBookingLifecycle(t *testing.T) {
	store := newMemStore()
	disp := testDispatcher()
	loc := testLocation(t)

	createUC := NewCreateBooking(store, disp, loc)
	updateUC := NewUpdateBooking(store, disp, loc)
	cancelUC := NewCancelBooking(store, disp)
	slotsUC := NewListBookedSlots(store, loc)

	ctx := context.Background()

	in := CreateBookingInput{
		FirstName: "سارة",
		Phone:     "0501234567",
		Date:      "2026-02-15",
		Time:      "5:00 PM",
		Service:   "فحص نظر عام",
	}

	created, err := createUC.Execute(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	retried, err := createUC.Execute(ctx, in)
	if err != nil {
		t.Fatalf("retry create: %v", err)
	}
	if retried.BookingID != created.BookingID {
		t.Fatalf("retry returned %q, want %q", retried.BookingID, created.BookingID)
	}
	if store.rowCount() != 1 {
		t.Fatalf("retry produced a second row")
	}

	slots, err := slotsUC.Execute(ctx, ListBookedSlotsInput{Date: "2026-02-15"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !containsSlot(slots, "5:00 PM") {
		t.Fatalf("slots = %v, want 5:00 PM booked", slots)
	}

	if err := cancelUC.Execute(ctx, created.BookingID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	slots, err = slotsUC.Execute(ctx, ListBookedSlotsInput{Date: "2026-02-15"})
	if err != nil {
		t.Fatalf("list after cancel: %v", err)
	}
	if containsSlot(slots, "5:00 PM") {
		t.Fatalf("slots = %v, cancelled booking still holds 5:00 PM", slots)
	}

	if _, err := updateUC.Execute(ctx, UpdateBookingInput{
		BookingID: created.BookingID,
		Time:      strPtr("6:00 PM"),
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	row, _ := store.row(created.BookingID)
	if row.Status != "Active" || row.Time != "6:00 PM" {
		t.Fatalf("row = %+v, want Active at 6:00 PM", row)
	}

	slots, err = slotsUC.Execute(ctx, ListBookedSlotsInput{Date: "2026-02-15"})
	if err != nil {
		t.Fatalf("list after update: %v", err)
	}
	if !containsSlot(slots, "6:00 PM") {
		t.Fatalf("slots = %v, rescheduled booking not visible", slots)
	}
}
