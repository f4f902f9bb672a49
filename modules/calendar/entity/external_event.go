package entity

import "time"

// ExternalEvent is the normalized form of one VEVENT from a vendor's
// external calendar feed. It lives only for the duration of a sync cycle
// (plus the redis cache window) and is never persisted as a table row.
type ExternalEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	IsAllDay    bool      `json:"is_all_day"`

	// RawRRule carries the recurrence rule, if any, so the sync pipeline can
	// expand instances over the configured window. Not serialized to cache;
	// cached events are already expanded.
	RawRRule string `json:"-"`
}

// OnDay reports whether the event's start falls on the given calendar day.
// The comparison is date-only in the timestamps' own location; no timezone
// conversion is performed.
func (e ExternalEvent) OnDay(date time.Time) bool {
	y1, m1, d1 := e.Start.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
