package booking

import (
	"context"
	"sort"
	"strings"
	"time"

	domain "github.com/OptiVisionCare/optic-booking/internal/domain/booking"
	"github.com/OptiVisionCare/optic-booking/internal/httperr"
)

type ListBookedSlotsInput struct {
	Date string
	// ExcludeBookingID removes one booking from the result, so a booking
	// being rescheduled does not block its own former slot.
	ExcludeBookingID string
}

type ListBookedSlots struct {
	store domain.Store
	loc   *time.Location
}

func NewListBookedSlots(
	store domain.Store,
	loc *time.Location,
) *ListBookedSlots {
	return &ListBookedSlots{
		store: store,
		loc:   loc,
	}
}

// Execute returns the time labels held by Active bookings on the date,
// normalized through the same date formatting as create so display-format
// mismatches cannot hide a collision.
func (uc *ListBookedSlots) Execute(
	ctx context.Context,
	in ListBookedSlotsInput,
) ([]string, error) {

	if strings.TrimSpace(in.Date) == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}

	formattedDate, err := domain.FormatDate(in.Date, uc.loc)
	if err != nil {
		return nil, err
	}

	rows, err := uc.store.ListActiveByDate(ctx, formattedDate)
	if err != nil {
		return nil, err
	}

	slots := make([]string, 0, len(rows))
	for _, b := range rows {
		if in.ExcludeBookingID != "" && b.BookingID == in.ExcludeBookingID {
			continue
		}
		slots = append(slots, b.Time)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return domain.SlotIndex(slots[i]) < domain.SlotIndex(slots[j])
	})

	return slots, nil
}
