package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"vendorhub/core/constants"
	"vendorhub/core/entity"
)

// PrivacySettings controls what the calendar sync pipeline is allowed to
// fetch and how much of each external event survives into the merged view.
type PrivacySettings struct {
	entity.BaseEntity
	VendorID                uuid.UUID `db:"vendor_id" json:"vendor_id"`
	ExternalCalendarEnabled bool      `db:"external_calendar_enabled" json:"external_calendar_enabled"`
	SyncRangeStart          time.Time `db:"sync_range_start" json:"sync_range_start"`
	SyncRangeEnd            time.Time `db:"sync_range_end" json:"sync_range_end"`
	ShowEventDetails        bool      `db:"show_event_details" json:"show_event_details"`
}

func (PrivacySettings) TableName() string {
	return "calendar_privacy_settings"
}

// DefaultPrivacySettings is what a vendor gets on first calendar connection:
// sync enabled, details hidden, a window from today to six months out.
func DefaultPrivacySettings(vendorID uuid.UUID, now time.Time) PrivacySettings {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return PrivacySettings{
		VendorID:                vendorID,
		ExternalCalendarEnabled: true,
		SyncRangeStart:          start,
		SyncRangeEnd:            start.AddDate(0, 6, 0),
		ShowEventDetails:        false,
	}
}

// Validate enforces the sync-range invariants: start strictly before end,
// span no longer than one year.
func (p PrivacySettings) Validate() error {
	if !p.SyncRangeStart.Before(p.SyncRangeEnd) {
		return fmt.Errorf("sync range start must be before end")
	}
	if p.SyncRangeEnd.Sub(p.SyncRangeStart) > time.Duration(constants.MaxSyncRangeDays)*24*time.Hour {
		return fmt.Errorf("sync range cannot exceed one year")
	}
	return nil
}
