package entity

import (
	"time"

	"github.com/google/uuid"

	"vendorhub/core/entity"
)

// CalendarFeedReference is a vendor's stored external calendar feed. The URL
// is encrypted at rest; the plaintext exists only in memory during a fetch.
type CalendarFeedReference struct {
	entity.BaseEntity
	VendorID     uuid.UUID  `db:"vendor_id" json:"vendor_id"`
	EncryptedURL string     `db:"encrypted_url" json:"-"`
	LastSyncAt   *time.Time `db:"last_sync_at" json:"last_sync_at,omitempty"`
}

func (CalendarFeedReference) TableName() string {
	return "calendar_feed_references"
}
