package dto

type CreateInquiryRequest struct {
	PlannerID string `json:"planner_id"`
	VendorID  string `json:"vendor_id"`
	EventDate string `json:"event_date"` // YYYY-MM-DD
	Message   string `json:"message"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status"` // responded | booked | declined
}

type InquiryResponse struct {
	ID        string `json:"id"`
	PlannerID string `json:"planner_id"`
	VendorID  string `json:"vendor_id"`
	EventDate string `json:"event_date"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	BookingID string `json:"booking_id,omitempty"`
}
