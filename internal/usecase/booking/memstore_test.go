package booking

import (
	"context"
	"sync"

	"github.com/OptiVisionCare/optic-booking/internal/audit"
	domain "github.com/OptiVisionCare/optic-booking/internal/domain/booking"
	"github.com/OptiVisionCare/optic-booking/internal/models"
)

// memStore is an in-memory Store with the same row-oriented semantics as
// the spreadsheet backend: append, whole-table scan, in-place update.
type memStore struct {
	mu   sync.Mutex
	rows []models.Booking
}

func newMemStore() *memStore {
	return &memStore{}
}

func (s *memStore) FindByBookingID(_ context.Context, bookingID string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.rows {
		if b.BookingID == bookingID {
			copied := b
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) FindActiveSlot(_ context.Context, phone, date, timeLabel string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.rows {
		if b.Phone == phone && b.Date == date && b.Time == timeLabel && domain.IsActive(b.Status) {
			copied := b
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) ListActiveByDate(_ context.Context, date string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for _, b := range s.rows {
		if b.Date == date && domain.IsActive(b.Status) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memStore) Append(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = append(s.rows, *b)
	return nil
}

func (s *memStore) Update(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rows {
		if s.rows[i].BookingID == b.BookingID {
			s.rows[i] = *b
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *memStore) rowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (s *memStore) row(bookingID string) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.rows {
		if b.BookingID == bookingID {
			return b, true
		}
	}
	return models.Booking{}, false
}

var _ domain.Store = (*memStore)(nil)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}
