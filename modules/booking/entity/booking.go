package entity

import (
	"time"

	"github.com/google/uuid"

	"vendorhub/core/entity"
)

type BookingStatus string

const (
	StatusConfirmed   BookingStatus = "confirmed"
	StatusCompleted   BookingStatus = "completed"
	StatusCancelled   BookingStatus = "cancelled"
	StatusRescheduled BookingStatus = "rescheduled"
)

// Booking is a confirmed engagement between a planner's inquiry and a
// vendor, pinned to one event date.
type Booking struct {
	entity.BaseEntity
	VendorID  uuid.UUID     `db:"vendor_id" json:"vendor_id"`
	InquiryID uuid.UUID     `db:"inquiry_id" json:"inquiry_id"`
	EventDate time.Time     `db:"event_date" json:"event_date"`
	Status    BookingStatus `db:"status" json:"status"`
}

func (Booking) TableName() string {
	return "bookings"
}

// CanTransitionTo enforces the booking status machine:
// confirmed -> completed | cancelled | rescheduled. Completed and cancelled
// are terminal. Rescheduled is a re-entry point: the booking returns to
// confirmed once its new date is set.
func (b Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled || next == StatusRescheduled
	case StatusRescheduled:
		return next == StatusConfirmed || next == StatusCancelled
	default:
		return false
	}
}

// BlocksDate reports whether the booking should count as occupying its event
// date in the availability view.
func (b Booking) BlocksDate() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCompleted
}

// OnDay reports whether the booking's event date is the given calendar day.
func (b Booking) OnDay(date time.Time) bool {
	y1, m1, d1 := b.EventDate.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
