package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/OptiVisionCare/optic-booking/internal/audit"
	domain "github.com/OptiVisionCare/optic-booking/internal/domain/booking"
	"github.com/OptiVisionCare/optic-booking/internal/httperr"
)

type CancelBooking struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewCancelBooking(
	store domain.Store,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		store: store,
		audit: audit,
	}
}

// Execute marks the row Cancelled and nothing else. Cancelling an already
// cancelled booking is a no-op re-write, so the operation is idempotent in
// effect.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID string,
) error {

	if strings.TrimSpace(bookingID) == "" {
		return httperr.ErrBusiness("missing_booking_id")
	}

	b, err := uc.store.FindByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness("booking_not_found")
		}
		return err
	}

	b.Status = string(domain.StatusCancelled)

	if err := uc.store.Update(ctx, b); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: b.BookingID,
	})

	return nil
}
