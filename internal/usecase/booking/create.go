package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/OptiVisionCare/optic-booking/internal/audit"
	domain "github.com/OptiVisionCare/optic-booking/internal/domain/booking"
	"github.com/OptiVisionCare/optic-booking/internal/httperr"
	"github.com/OptiVisionCare/optic-booking/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateBookingInput struct {
	FirstName string
	LastName  string
	Phone     string
	Date      string
	Time      string
	Service   string
	Comments  string
}

type CreateBookingOutput struct {
	BookingID string
	// Duplicate marks an idempotent replay: the slot was already held by an
	// Active row for the same phone, and its id is returned instead of a
	// second row being written.
	Duplicate bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	store domain.Store
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateBooking(
	store domain.Store,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		store: store,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*CreateBookingOutput, error) {

	if strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.Time) == "" ||
		strings.TrimSpace(in.Service) == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	formattedDate, err := domain.FormatDate(in.Date, uc.loc)
	if err != nil {
		return nil, err
	}

	// Idempotency check: a repeated identical request (same phone, same
	// slot, still Active) returns the existing id and writes nothing, which
	// is what makes client-side retries safe.
	existing, err := uc.store.FindActiveSlot(ctx, in.Phone, formattedDate, in.Time)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "booking_duplicate",
			Entity:   "booking",
			EntityID: existing.BookingID,
		})
		return &CreateBookingOutput{
			BookingID: existing.BookingID,
			Duplicate: true,
		}, nil
	}

	b := &models.Booking{
		BookingID:  uuid.NewString(),
		CustomerID: domain.CustomerID(in.Phone),
		Status:     string(domain.InitialStatus()),
		Date:       formattedDate,
		Time:       in.Time,
		Service:    in.Service,
		Name:       strings.TrimSpace(in.FirstName + " " + in.LastName),
		Phone:      in.Phone,
		Comments:   domain.SanitizeComments(in.Comments),
	}

	if err := uc.store.Append(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.BookingID,
	})

	return &CreateBookingOutput{BookingID: b.BookingID}, nil
}
