package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/OptiVisionCare/optic-booking/internal/audit"
	domain "github.com/OptiVisionCare/optic-booking/internal/domain/booking"
	"github.com/OptiVisionCare/optic-booking/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

// Patch fields are pointers so an absent field and an empty one are
// distinguishable: nil means "keep the row's current value".
type UpdateBookingInput struct {
	BookingID string

	FirstName *string
	LastName  *string
	Date      *string
	Time      *string
	Service   *string
	Comments  *string
}

// ======================================================
// USE CASE
// ======================================================

// UpdateBooking applies a partial patch to an existing row and always forces
// the status back to Active, so rescheduling a cancelled booking revives it
// — even a comments-only patch un-cancels. It also performs no conflict
// probe against other rows, unlike create; both behaviors match the
// booking wizard this service was built for.
type UpdateBooking struct {
	store domain.Store
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewUpdateBooking(
	store domain.Store,
	audit *audit.Dispatcher,
	loc *time.Location,
) *UpdateBooking {
	return &UpdateBooking{
		store: store,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (string, error) {

	if strings.TrimSpace(in.BookingID) == "" {
		return "", httperr.ErrBusiness("missing_booking_id")
	}

	b, err := uc.store.FindByBookingID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", httperr.ErrBusiness("booking_not_found")
		}
		return "", err
	}

	if in.Date != nil {
		formattedDate, err := domain.FormatDate(*in.Date, uc.loc)
		if err != nil {
			return "", err
		}
		b.Date = formattedDate
	}
	if in.Time != nil {
		b.Time = *in.Time
	}
	if in.Service != nil {
		b.Service = *in.Service
	}
	if in.Comments != nil {
		b.Comments = domain.SanitizeComments(*in.Comments)
	}
	if in.FirstName != nil || in.LastName != nil {
		b.Name = patchName(b.Name, in.FirstName, in.LastName)
	}

	b.Status = string(domain.StatusActive)

	if err := uc.store.Update(ctx, b); err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: b.BookingID,
	})

	return b.BookingID, nil
}

// patchName rebuilds the stored "First Last" column from whichever name
// parts the patch carries, keeping the other part from the current value.
func patchName(current string, first, last *string) string {
	curFirst, curLast := current, ""
	if i := strings.IndexByte(current, ' '); i >= 0 {
		curFirst, curLast = current[:i], current[i+1:]
	}

	if first != nil {
		curFirst = *first
	}
	if last != nil {
		curLast = *last
	}

	return strings.TrimSpace(curFirst + " " + curLast)
}
