package entity

import (
	"time"

	"github.com/google/uuid"

	"vendorhub/core/entity"
)

// Source of an unavailability block. Booking-linked blocks are released
// automatically when the booking is cancelled; manual blocks never are.
const (
	SourceManual  = "manual"
	SourceBooking = "booking"
)

// AvailabilityRecord is the vendor's own day-granular open/closed
// declaration, independent of any external calendar. At most one record
// exists per (vendor, date); absence means "available" by default.
type AvailabilityRecord struct {
	entity.BaseEntity
	VendorID    uuid.UUID `db:"vendor_id" json:"vendor_id"`
	Date        time.Time `db:"date" json:"date"`
	IsAvailable bool      `db:"is_available" json:"is_available"`
	Source      string    `db:"source" json:"source"`
}

func (AvailabilityRecord) TableName() string {
	return "availability_records"
}

// OnDay reports whether the record covers the given calendar day.
func (r AvailabilityRecord) OnDay(date time.Time) bool {
	y1, m1, d1 := r.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
