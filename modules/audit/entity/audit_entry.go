package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Audit actions recorded by the calendar pipeline.
const (
	ActionFeedURLAdded           = "feed_url_added"
	ActionFeedURLUpdated         = "feed_url_updated"
	ActionFeedURLRemoved         = "feed_url_removed"
	ActionEventsFetched          = "events_fetched"
	ActionPrivacySettingsChanged = "privacy_settings_changed"
	ActionSecurityViolation      = "security_violation"
)

// AuditEntry is one append-only row in the audit log. Consumers only ever
// append; this is a logging sink, not a queryable trail.
type AuditEntry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Action    string    `db:"action" json:"action"`
	Severity  Severity  `db:"severity" json:"severity"`
	Details   JSONB     `db:"details" json:"details"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (AuditEntry) TableName() string {
	return "audit_log"
}

type JSONB map[string]interface{}

func (a JSONB) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONB) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}
