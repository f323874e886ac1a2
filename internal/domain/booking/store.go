package booking

import (
	"context"
	"errors"

	"github.com/OptiVisionCare/optic-booking/internal/models"
)

// ErrNotFound is returned by Store lookups that match no row.
var ErrNotFound = errors.New("booking not found")

// Store is the row-store contract the reconciliation service writes through.
// The spreadsheet implementation realizes every lookup as a full scan; the
// database implementation uses indexes. Both expose identical semantics, and
// neither enforces invariants on its own: the service layer is the sole
// guardian of the one-Active-row-per-slot rule.
type Store interface {
	// -------- Lookup --------
	FindByBookingID(
		ctx context.Context,
		bookingID string,
	) (*models.Booking, error)

	// FindActiveSlot is the idempotency probe: an Active row with the same
	// phone, formatted date and time label, if any.
	FindActiveSlot(
		ctx context.Context,
		phone string,
		date string,
		timeLabel string,
	) (*models.Booking, error)

	ListActiveByDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	// -------- Write --------
	Append(
		ctx context.Context,
		b *models.Booking,
	) error

	Update(
		ctx context.Context,
		b *models.Booking,
	) error
}
