package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"vendorhub/core/database"
	"vendorhub/core/logger"
	"vendorhub/modules/booking/entity"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]entity.Booking, error)
	ListByVendorBetween(ctx context.Context, vendorID uuid.UUID, start, end time.Time) ([]entity.Booking, error)
}

type bookingRepository struct {
	db database.IDatabase
}

func NewBookingRepository(db database.IDatabase) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (vendor_id, inquiry_id, event_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		booking.VendorID, booking.InquiryID, booking.EventDate, booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		logger.Error("BookingRepository:Create:Error:", err)
	}
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, vendor_id, inquiry_id, event_date, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("BookingRepository:GetByID:Error:", err)
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET event_date = $1, status = $2, updated_at = NOW()
		WHERE id = $3
	`
	return r.db.ExecContext(ctx, query, booking.EventDate, booking.Status, booking.ID)
}

func (r *bookingRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]entity.Booking, error) {
	query := `
		SELECT id, vendor_id, inquiry_id, event_date, status, created_at, updated_at
		FROM bookings
		WHERE vendor_id = $1
		ORDER BY event_date DESC
	`
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, query, vendorID)
	if err != nil {
		logger.Error("BookingRepository:ListByVendor:Error:", err)
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListByVendorBetween(ctx context.Context, vendorID uuid.UUID, start, end time.Time) ([]entity.Booking, error) {
	query := `
		SELECT id, vendor_id, inquiry_id, event_date, status, created_at, updated_at
		FROM bookings
		WHERE vendor_id = $1 AND event_date >= $2 AND event_date <= $3
		ORDER BY event_date ASC
	`
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, query, vendorID, start, end)
	if err != nil {
		logger.Error("BookingRepository:ListByVendorBetween:Error:", err)
		return nil, err
	}
	return bookings, nil
}
