package dto

type SetDayRequest struct {
	Date        string `json:"date"` // YYYY-MM-DD
	IsAvailable bool   `json:"is_available"`
}

type BulkMarkRequest struct {
	Start       string `json:"start"` // YYYY-MM-DD
	End         string `json:"end"`   // YYYY-MM-DD
	IsAvailable bool   `json:"is_available"`
}

type AvailabilityRecordResponse struct {
	Date        string `json:"date"`
	IsAvailable bool   `json:"is_available"`
	Source      string `json:"source"`
}
