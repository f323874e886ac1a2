package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/OptiVisionCare/optic-booking/internal/domain/booking"
	"github.com/OptiVisionCare/optic-booking/internal/models"
)

// BookingGormRepository is the indexed-database port of the row store:
// the scans become index lookups on booking_id and (phone, date, time,
// status), while the idempotency and partial-update contracts stay exactly
// those of the spreadsheet backend. Deliberately no unique constraint on
// the slot triple, so both backends accept the same create race.
type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *BookingGormRepository) FindByBookingID(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) FindActiveSlot(
	ctx context.Context,
	phone string,
	date string,
	timeLabel string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"phone = ? AND date = ? AND time = ? AND status = ?",
			phone, date, timeLabel, string(domain.StatusActive),
		).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) ListActiveByDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date = ? AND status = ?", date, string(domain.StatusActive)).
		Order("id ASC").
		Find(&bs).Error; err != nil {
		return nil, err
	}

	return bs, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *BookingGormRepository) Append(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Compile-time check
var _ domain.Store = (*BookingGormRepository)(nil)
