package dto

type UpdateStatusRequest struct {
	Status string `json:"status"` // completed | cancelled | rescheduled
}

type RescheduleRequest struct {
	NewDate string `json:"new_date"` // YYYY-MM-DD
}

type BookingResponse struct {
	ID        string `json:"id"`
	VendorID  string `json:"vendor_id"`
	InquiryID string `json:"inquiry_id"`
	EventDate string `json:"event_date"`
	Status    string `json:"status"`
}
