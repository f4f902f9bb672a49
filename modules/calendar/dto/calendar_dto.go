package dto

type ConnectFeedRequest struct {
	URL string `json:"url"`
}

type FeedStatusResponse struct {
	Connected  bool   `json:"connected"`
	LastSyncAt string `json:"last_sync_at,omitempty"`
}

type ExternalEventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	IsAllDay    bool   `json:"is_all_day"`
}

type DayStatusResponse struct {
	Date              string                  `json:"date"`
	IsAvailable       bool                    `json:"is_available"`
	HasExternalEvents bool                    `json:"has_external_events"`
	HasBookings       bool                    `json:"has_bookings"`
	HasConflict       bool                    `json:"has_conflict"`
	Events            []ExternalEventResponse `json:"events,omitempty"`
}

type AvailabilityViewResponse struct {
	Days       []DayStatusResponse `json:"days"`
	LastSyncAt string              `json:"last_sync_at,omitempty"`
	// Warning carries a user-facing message when the external feed could not
	// be reached; the vendor's own data still renders.
	Warning string `json:"warning,omitempty"`
}

type UpdatePrivacySettingsRequest struct {
	ExternalCalendarEnabled bool   `json:"external_calendar_enabled"`
	SyncRangeStart          string `json:"sync_range_start"` // YYYY-MM-DD
	SyncRangeEnd            string `json:"sync_range_end"`   // YYYY-MM-DD
	ShowEventDetails        bool   `json:"show_event_details"`
}

type PrivacySettingsResponse struct {
	ExternalCalendarEnabled bool   `json:"external_calendar_enabled"`
	SyncRangeStart          string `json:"sync_range_start"`
	SyncRangeEnd            string `json:"sync_range_end"`
	ShowEventDetails        bool   `json:"show_event_details"`
}
