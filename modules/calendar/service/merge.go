package service

import (
	"sort"
	"time"

	availEntity "vendorhub/modules/availability/entity"
	bookingEntity "vendorhub/modules/booking/entity"
	"vendorhub/modules/calendar/entity"
)

// DayAvailability is the explicit three-state reading of a vendor's
// availability records for one day. Unknown (no record) collapses to
// available only at the presentation boundary, keeping the default-open
// policy visible instead of implicit.
type DayAvailability int

const (
	AvailabilityUnknown DayAvailability = iota
	AvailabilityAvailable
	AvailabilityUnavailable
)

// DayStatus is the merged per-day view handed to the presentation layer.
type DayStatus struct {
	Date              time.Time `json:"date"`
	IsAvailable       bool      `json:"is_available"`
	HasExternalEvents bool      `json:"has_external_events"`
	HasBookings       bool      `json:"has_bookings"`
	HasConflict       bool      `json:"has_conflict"`
}

// AvailabilityForDay reads the vendor's record for one day. No record means
// Unknown; vendors are not required to pre-populate every date.
func AvailabilityForDay(date time.Time, records []availEntity.AvailabilityRecord) DayAvailability {
	for _, r := range records {
		if r.OnDay(date) {
			if r.IsAvailable {
				return AvailabilityAvailable
			}
			return AvailabilityUnavailable
		}
	}
	return AvailabilityUnknown
}

// GetDayStatus merges external events, the vendor's availability records,
// and bookings into one day's status. Pure function over its inputs.
//
// HasConflict flags a day where the vendor is marked unavailable while an
// external calendar also shows an event: an advisory "possibly double-booked
// against an external system" signal, not a hard error.
func GetDayStatus(
	date time.Time,
	events []entity.ExternalEvent,
	records []availEntity.AvailabilityRecord,
	bookings []bookingEntity.Booking,
) DayStatus {
	avail := AvailabilityForDay(date, records)
	isAvailable := avail != AvailabilityUnavailable

	hasExternal := false
	for _, ev := range events {
		if ev.OnDay(date) {
			hasExternal = true
			break
		}
	}

	hasBookings := false
	for _, b := range bookings {
		if b.BlocksDate() && b.OnDay(date) {
			hasBookings = true
			break
		}
	}

	return DayStatus{
		Date:              date,
		IsAvailable:       isAvailable,
		HasExternalEvents: hasExternal,
		HasBookings:       hasBookings,
		HasConflict:       !isAvailable && hasExternal,
	}
}

// GetRangeStatus applies GetDayStatus to every calendar day in [start, end]
// inclusive. Idempotent and side-effect-free, so the presentation layer can
// memoize whole-month results safely.
func GetRangeStatus(
	start, end time.Time,
	events []entity.ExternalEvent,
	records []availEntity.AvailabilityRecord,
	bookings []bookingEntity.Booking,
) []DayStatus {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	statuses := make([]DayStatus, 0)
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		statuses = append(statuses, GetDayStatus(day, events, records, bookings))
	}
	return statuses
}

// EventsOnDay returns the external events starting on the given day, sorted
// by start ascending. The sort is stable: events with equal starts keep
// their source order.
func EventsOnDay(date time.Time, events []entity.ExternalEvent) []entity.ExternalEvent {
	out := make([]entity.ExternalEvent, 0)
	for _, ev := range events {
		if ev.OnDay(date) {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
