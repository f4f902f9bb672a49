package entity

import (
	"time"

	"github.com/google/uuid"

	"vendorhub/core/entity"
)

type InquiryStatus string

const (
	StatusPending   InquiryStatus = "pending"
	StatusResponded InquiryStatus = "responded"
	StatusBooked    InquiryStatus = "booked"
	StatusDeclined  InquiryStatus = "declined"
)

// Inquiry is a planner's request to a vendor for a specific event date.
type Inquiry struct {
	entity.BaseEntity
	PlannerID uuid.UUID     `db:"planner_id" json:"planner_id"`
	VendorID  uuid.UUID     `db:"vendor_id" json:"vendor_id"`
	EventDate time.Time     `db:"event_date" json:"event_date"`
	Message   string        `db:"message" json:"message"`
	Status    InquiryStatus `db:"status" json:"status"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

type PaginatedInquiryEntity = entity.Pagination[Inquiry]

// CanTransitionTo: pending -> responded | booked | declined;
// responded -> booked | declined. Booked and declined are terminal.
func (i Inquiry) CanTransitionTo(next InquiryStatus) bool {
	switch i.Status {
	case StatusPending:
		return next == StatusResponded || next == StatusBooked || next == StatusDeclined
	case StatusResponded:
		return next == StatusBooked || next == StatusDeclined
	default:
		return false
	}
}
