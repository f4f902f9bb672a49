package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"vendorhub/core/database"
	"vendorhub/core/logger"
	"vendorhub/modules/calendar/entity"
)

type CalendarRepository interface {
	// Feed references. A vendor owns zero or one.
	UpsertFeedReference(ctx context.Context, ref *entity.CalendarFeedReference) error
	GetFeedReference(ctx context.Context, vendorID uuid.UUID) (*entity.CalendarFeedReference, error)
	DeleteFeedReference(ctx context.Context, vendorID uuid.UUID) error
	TouchLastSync(ctx context.Context, vendorID uuid.UUID, at time.Time) error
	ListFeedVendorIDs(ctx context.Context) ([]uuid.UUID, error)

	// Privacy settings.
	GetPrivacySettings(ctx context.Context, vendorID uuid.UUID) (*entity.PrivacySettings, error)
	UpsertPrivacySettings(ctx context.Context, settings *entity.PrivacySettings) error
}

type calendarRepository struct {
	db database.IDatabase
}

func NewCalendarRepository(db database.IDatabase) CalendarRepository {
	return &calendarRepository{db: db}
}

// UpsertFeedReference stores or replaces the vendor's encrypted feed URL.
func (r *calendarRepository) UpsertFeedReference(ctx context.Context, ref *entity.CalendarFeedReference) error {
	query := `
		INSERT INTO calendar_feed_references (vendor_id, encrypted_url, last_sync_at, created_at, updated_at)
		VALUES ($1, $2, NULL, NOW(), NOW())
		ON CONFLICT (vendor_id) DO UPDATE
		SET encrypted_url = EXCLUDED.encrypted_url, last_sync_at = NULL, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, ref.VendorID, ref.EncryptedURL).
		Scan(&ref.ID, &ref.CreatedAt, &ref.UpdatedAt)
	if err != nil {
		logger.Error("CalendarRepository:UpsertFeedReference:Error:", err)
	}
	return err
}

func (r *calendarRepository) GetFeedReference(ctx context.Context, vendorID uuid.UUID) (*entity.CalendarFeedReference, error) {
	query := `
		SELECT id, vendor_id, encrypted_url, last_sync_at, created_at, updated_at
		FROM calendar_feed_references
		WHERE vendor_id = $1
	`
	var ref entity.CalendarFeedReference
	err := r.db.GetContext(ctx, &ref, query, vendorID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("CalendarRepository:GetFeedReference:Error:", err)
		return nil, err
	}
	return &ref, nil
}

// DeleteFeedReference removes the feed on vendor disconnect. Cached events
// and lastSync are cleared by the service layer alongside this call.
func (r *calendarRepository) DeleteFeedReference(ctx context.Context, vendorID uuid.UUID) error {
	return r.db.ExecContext(ctx, `DELETE FROM calendar_feed_references WHERE vendor_id = $1`, vendorID)
}

func (r *calendarRepository) TouchLastSync(ctx context.Context, vendorID uuid.UUID, at time.Time) error {
	query := `UPDATE calendar_feed_references SET last_sync_at = $1, updated_at = NOW() WHERE vendor_id = $2`
	return r.db.ExecContext(ctx, query, at, vendorID)
}

// ListFeedVendorIDs returns every vendor with a connected feed, for the
// periodic background refresh.
func (r *calendarRepository) ListFeedVendorIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, `SELECT vendor_id FROM calendar_feed_references`)
	if err != nil {
		logger.Error("CalendarRepository:ListFeedVendorIDs:Error:", err)
		return nil, err
	}
	return ids, nil
}

func (r *calendarRepository) GetPrivacySettings(ctx context.Context, vendorID uuid.UUID) (*entity.PrivacySettings, error) {
	query := `
		SELECT id, vendor_id, external_calendar_enabled, sync_range_start, sync_range_end, show_event_details, created_at, updated_at
		FROM calendar_privacy_settings
		WHERE vendor_id = $1
	`
	var settings entity.PrivacySettings
	err := r.db.GetContext(ctx, &settings, query, vendorID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("CalendarRepository:GetPrivacySettings:Error:", err)
		return nil, err
	}
	return &settings, nil
}

func (r *calendarRepository) UpsertPrivacySettings(ctx context.Context, settings *entity.PrivacySettings) error {
	query := `
		INSERT INTO calendar_privacy_settings
			(vendor_id, external_calendar_enabled, sync_range_start, sync_range_end, show_event_details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (vendor_id) DO UPDATE
		SET external_calendar_enabled = EXCLUDED.external_calendar_enabled,
			sync_range_start = EXCLUDED.sync_range_start,
			sync_range_end = EXCLUDED.sync_range_end,
			show_event_details = EXCLUDED.show_event_details,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		settings.VendorID, settings.ExternalCalendarEnabled,
		settings.SyncRangeStart, settings.SyncRangeEnd, settings.ShowEventDetails,
	).Scan(&settings.ID, &settings.CreatedAt, &settings.UpdatedAt)
	if err != nil {
		logger.Error("CalendarRepository:UpsertPrivacySettings:Error:", err)
	}
	return err
}
