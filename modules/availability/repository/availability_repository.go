package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"vendorhub/core/database"
	"vendorhub/core/logger"
	"vendorhub/modules/availability/entity"
)

type AvailabilityRepository interface {
	// Upsert converges on one row per (vendor, date) no matter how many
	// concurrent writers race; duplicate booking confirmations are harmless.
	Upsert(ctx context.Context, record *entity.AvailabilityRecord) error
	Get(ctx context.Context, vendorID uuid.UUID, date time.Time) (*entity.AvailabilityRecord, error)
	ListRange(ctx context.Context, vendorID uuid.UUID, start, end time.Time) ([]entity.AvailabilityRecord, error)
	DeleteRange(ctx context.Context, vendorID uuid.UUID, start, end time.Time) error
}

type availabilityRepository struct {
	db database.IDatabase
}

func NewAvailabilityRepository(db database.IDatabase) AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) Upsert(ctx context.Context, record *entity.AvailabilityRecord) error {
	query := `
		INSERT INTO availability_records (vendor_id, date, is_available, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (vendor_id, date) DO UPDATE
		SET is_available = EXCLUDED.is_available, source = EXCLUDED.source, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		record.VendorID, record.Date, record.IsAvailable, record.Source,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		logger.Error("AvailabilityRepository:Upsert:Error:", err)
	}
	return err
}

func (r *availabilityRepository) Get(ctx context.Context, vendorID uuid.UUID, date time.Time) (*entity.AvailabilityRecord, error) {
	query := `
		SELECT id, vendor_id, date, is_available, source, created_at, updated_at
		FROM availability_records
		WHERE vendor_id = $1 AND date = $2
	`
	var record entity.AvailabilityRecord
	err := r.db.GetContext(ctx, &record, query, vendorID, date)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("AvailabilityRepository:Get:Error:", err)
		return nil, err
	}
	return &record, nil
}

func (r *availabilityRepository) ListRange(ctx context.Context, vendorID uuid.UUID, start, end time.Time) ([]entity.AvailabilityRecord, error) {
	query := `
		SELECT id, vendor_id, date, is_available, source, created_at, updated_at
		FROM availability_records
		WHERE vendor_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`
	var records []entity.AvailabilityRecord
	err := r.db.SelectContext(ctx, &records, query, vendorID, start, end)
	if err != nil {
		logger.Error("AvailabilityRepository:ListRange:Error:", err)
		return nil, err
	}
	return records, nil
}

// DeleteRange clears records so the range falls back to the default-open
// policy. Used by the vendor's bulk "mark available again" action.
func (r *availabilityRepository) DeleteRange(ctx context.Context, vendorID uuid.UUID, start, end time.Time) error {
	query := `DELETE FROM availability_records WHERE vendor_id = $1 AND date >= $2 AND date <= $3`
	return r.db.ExecContext(ctx, query, vendorID, start, end)
}
